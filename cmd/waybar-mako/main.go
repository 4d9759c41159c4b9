// Package main provides the waybar notification history widget.
package main

func main() {
	Execute()
}
