// Package main is the entry point for the BrainBox application.
// It delegates to cmd, which parses flags, resolves configuration, and
// drives the memory engine.
package main

import (
	"github.com/brainbox/engine/cmd"
)

func main() {
	cmd.Execute()
}
