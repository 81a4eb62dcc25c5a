// Package main is the entry point for the peek CLI.
package main

import "github.com/mouse-blink/peek/cmd"

func main() {
	cmd.Execute()
}
