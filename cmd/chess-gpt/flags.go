// flags.go - Command-line flag definitions
package main

import "flag"

var (
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard initial position)")
	version  = flag.Bool("version", false, "Print version and exit")
	help     = flag.Bool("h", false, "Show usage information")
)
