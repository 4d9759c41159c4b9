// Package notify sends desktop notifications over D-Bus.
package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Urgency levels matching the freedesktop notification spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is an outgoing desktop notification.
type Notification struct {
	AppName string
	Summary string
	Body    string
	AppIcon string
	Urgency Urgency

	// SyncKey, when set, is passed as the x-canonical-private-synchronous
	// hint so that successive notifications with the same key replace
	// each other instead of stacking.
	SyncKey string

	// ExpireTimeout in milliseconds; -1 = server default.
	ExpireTimeout int32
}

// Notifier sends desktop notifications.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

const (
	notifyBusName   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications"
)

// DBusNotifier sends notifications through the session bus.
type DBusNotifier struct {
	conn *dbus.Conn
}

// NewDBusNotifier connects to the session bus.
func NewDBusNotifier() (*DBusNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &DBusNotifier{conn: conn}, nil
}

// Send calls org.freedesktop.Notifications.Notify.
// D-Bus method: Notify(susssasa{sv}i) -> u
func (d *DBusNotifier) Send(ctx context.Context, n Notification) error {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}
	if n.SyncKey != "" {
		hints["x-canonical-private-synchronous"] = dbus.MakeVariant(n.SyncKey)
	}

	obj := d.conn.Object(notifyBusName, notifyPath)
	call := obj.CallWithContext(ctx, notifyInterface+".Notify", 0,
		n.AppName,
		uint32(0), // replaces_id; replacement is handled via the sync hint
		n.AppIcon,
		n.Summary,
		n.Body,
		[]string{}, // actions
		hints,
		n.ExpireTimeout,
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	return nil
}

// Close releases the bus connection.
// The session bus connection is shared, so this is a no-op today; it
// exists so callers don't depend on that detail.
func (d *DBusNotifier) Close() error {
	return nil
}
