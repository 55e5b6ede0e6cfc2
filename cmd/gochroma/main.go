// cmd/gochroma/main.go
package main

import (
	"fmt"
	"os"

	"github.com/willibrandon/gochroma/cmd/gochroma/cli"
	"github.com/willibrandon/gochroma/cmd/gochroma/commands"
)

// Version information (set via ldflags during build)
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Set version info
	cli.Version = version
	cli.Commit = commit
	cli.Date = date
	cli.BuiltBy = builtBy

	// Setup version after variables are set
	cli.SetupVersion()

	// Register commands
	cli.AddCommand(commands.NewVersionCommand(cli.Console))
	cli.AddCommand(commands.NewPaintCommand(cli.Console))
	cli.AddCommand(commands.NewChartCommand(cli.Console))
	cli.AddCommand(commands.NewPaletteCommand(cli.Console))

	// Execute CLI
	if err := cli.Execute(); err != nil {
		// Print error to stderr since SilenceErrors is true in rootCmd
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
