// cmd/gochroma/cli/app.go
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gochroma/cmd/gochroma/output"
	"github.com/willibrandon/gochroma/colorize"
	"github.com/willibrandon/gochroma/observability"
)

var rootCmd = &cobra.Command{
	Use:   "gochroma",
	Short: "Terminal text coloring toolkit",
	Long: `gochroma renders colored and styled text on terminals that understand
ANSI escape sequences, and degrades to plain text on ones that don't.

Complete documentation is available at https://github.com/willibrandon/gochroma`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Show help when no command is provided
		_ = cmd.Help()
	},
}

// Console is the global console for CLI commands
var Console *output.Console

// Log is the global structured logger, upgraded from a no-op by the
// verbosity flag.
var Log observability.Logger = observability.NewNullLogger()

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize console
	Console = output.DefaultConsole()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyGlobalFlags()
	}

	rootCmd.PersistentFlags().StringP("verbosity", "", "normal", "Display verbosity (quiet, normal, detailed, diagnostic)")
	rootCmd.PersistentFlags().BoolP("no-color", "", false, "Disable colored output regardless of terminal support")
	rootCmd.PersistentFlags().BoolP("force-color", "", false, "Emit colored output even when stdout is not a terminal")
	rootCmd.PersistentFlags().StringP("palette-file", "", "", "Palette file to use (default: user config directory)")
}

// applyGlobalFlags maps the persistent flags onto the console, the
// logger, and the process-wide color gate. --no-color wins when both
// color flags are given.
func applyGlobalFlags() {
	flags := rootCmd.PersistentFlags()

	switch v, _ := flags.GetString("verbosity"); v {
	case "quiet":
		Console.SetVerbosity(output.VerbosityQuiet)
	case "detailed":
		Console.SetVerbosity(output.VerbosityDetailed)
		Log = observability.NewLogger(os.Stderr, observability.InfoLevel)
	case "diagnostic":
		Console.SetVerbosity(output.VerbosityDiagnostic)
		Log = observability.NewLogger(os.Stderr, observability.DebugLevel)
	default:
		Console.SetVerbosity(output.VerbosityNormal)
	}

	if noColor, _ := flags.GetBool("no-color"); noColor {
		colorize.SetOverride(false)
	} else if force, _ := flags.GetBool("force-color"); force {
		colorize.SetOverride(true)
	}
}

// PaletteFile returns the --palette-file flag value, or "" when unset.
func PaletteFile() string {
	v, _ := rootCmd.PersistentFlags().GetString("palette-file")
	return v
}

// SetupVersion configures version information after variables are set
func SetupVersion() {
	rootCmd.SetVersionTemplate(GetFullVersion() + "\n")
	rootCmd.Version = GetVersion()
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
