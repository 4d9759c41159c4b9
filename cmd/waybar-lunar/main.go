// Package main provides the waybar moon phase widget.
package main

func main() {
	Execute()
}
