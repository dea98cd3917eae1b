// Package main is the entry point for the varmint CLI.
package main

import "github.com/mouse-blink/varmint/cmd"

func main() {
	cmd.Execute()
}
