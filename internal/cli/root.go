// Package cli provides the command-line interface for greplite.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Usage, pattern, or configuration error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "greplite <pattern> [input ...]",
		Short: "Search input lines for a pattern",
		Long: `greplite searches files, directories, or standard input for lines
matching a regular expression.

With no inputs, standard input is searched. With -r, directory inputs are
searched recursively, visiting every regular file beneath them. Context
flags print the lines surrounding each match, and -c reports counts
instead of lines.

Exit codes:
  0 - Search completed (with or without matches)
  2 - Usage, pattern, or configuration error`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolVarP(&opts.Invert, "invert-match", "v", false, "Select lines not matching the pattern")
	cmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print a count of selected lines per input")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Search directories recursively")
	cmd.Flags().IntVarP(&opts.After, "after-context", "A", 0, "Print NUM lines after each match")
	cmd.Flags().IntVarP(&opts.Before, "before-context", "B", 0, "Print NUM lines before each match")
	cmd.Flags().IntVarP(&opts.Context, "context", "C", 0, "Print NUM lines around each match (overrides -A and -B)")
	cmd.Flags().StringVar(&opts.Color, "color", "", "When to highlight matches (auto|always|never)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to config file (default $GREPLITE_CONFIG)")

	return cmd
}
