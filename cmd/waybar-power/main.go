// Package main provides the waybar power profile widget.
package main

func main() {
	Execute()
}
