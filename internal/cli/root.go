// Package cli provides the command-line interface for rhythmhue.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rhythmhue",
	Short: "Derive UI colour palettes from album art",
	Long: `Rhythmhue extracts a WCAG-AA-compliant five-role colour palette
(primary, secondary, accent, background, foreground) from album-art
images, suitable for theming a music player UI.

Palettes are deterministic for identical input pixels, and a bounded LRU
cache keyed by album+artist fingerprints avoids re-analysing art for
recordings that have already been seen.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(warmCmd)
}

// newLogger builds the CLI logger honouring the --verbose flag.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "rhythmhue",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
