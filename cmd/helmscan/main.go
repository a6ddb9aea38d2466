// helmscan is a CLI tool for decoding and inspecting NXT project exports.
package main

import (
	"fmt"
	"os"

	"github.com/tmkeel/helmscan/cmd/helmscan/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "decode":
		exitCode = commands.RunDecode(args, os.Stdout, os.Stderr)
	case "summary":
		exitCode = commands.RunSummary(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("helmscan version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`helmscan - NXT project export decoder

Usage:
  helmscan <command> [options] <file>

Commands:
  validate   Run structural checks on a project export
  decode     Decode a project export to JSON
  summary    Print project counts and metadata

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  helmscan validate vessel.nxt
  helmscan decode --config configs/config.yaml vessel.nxt
  helmscan summary vessel.nxt

For command-specific help, run:
  helmscan <command> --help`)
}
