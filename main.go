// Package main is the entry point for the dupesweep CLI.
package main

import "dupesweep.dev/pkg/dupesweep/cmd"

func main() {
	cmd.Execute()
}
