package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"greplite/pkg/config"
	"greplite/pkg/matcher"
	"greplite/pkg/output"
	"greplite/pkg/scan"
	"greplite/pkg/source"
)

// SearchOptions holds command-line options for the root command.
type SearchOptions struct {
	IgnoreCase bool
	Invert     bool
	Count      bool
	Recursive  bool
	After      int
	Before     int
	Context    int
	Color      string
	ConfigPath string
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	pattern := args[0]
	inputs := args[1:]

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	before, after, err := resolveContext(cmd, opts, cfg)
	if err != nil {
		return err
	}

	m, err := matcher.New(pattern, opts.IgnoreCase, opts.Invert)
	if err != nil {
		return err
	}

	mode, err := colorMode(opts, cfg)
	if err != nil {
		return err
	}

	streams := source.Resolve(inputs, opts.Recursive, cfg.ExcludeDirs)

	printerOpts := output.Options{Multi: len(streams) > 1}
	if colorEnabled(mode) {
		printerOpts.Spans = m.Spans
	}
	printer := output.NewPrinter(cmd.OutOrStdout(), printerOpts)

	scanner := scan.New(m, scan.Config{
		Before:       before,
		After:        after,
		CountOnly:    opts.Count,
		MaxLineBytes: cfg.MaxLineBytes,
	}, printer)

	for _, stream := range streams {
		if err := scanner.Scan(ctx, stream); err != nil {
			return err
		}
	}

	return nil
}

// resolveContext merges context flags with config defaults. A positive -C
// overrides -A and -B both.
func resolveContext(cmd *cobra.Command, opts *SearchOptions, cfg *config.Config) (before, after int, err error) {
	before, after = cfg.Context.Before, cfg.Context.After

	flags := cmd.Flags()
	if flags.Changed("before-context") {
		before = opts.Before
	}
	if flags.Changed("after-context") {
		after = opts.After
	}
	if opts.Context > 0 {
		before, after = opts.Context, opts.Context
	}

	if opts.Context < 0 {
		return 0, 0, fmt.Errorf("context: must be >= 0, got %d", opts.Context)
	}
	if before < 0 {
		return 0, 0, fmt.Errorf("before-context: must be >= 0, got %d", before)
	}
	if after < 0 {
		return 0, 0, fmt.Errorf("after-context: must be >= 0, got %d", after)
	}

	return before, after, nil
}

// colorMode resolves the highlight mode: an explicit flag wins over the
// environment and config file.
func colorMode(opts *SearchOptions, cfg *config.Config) (string, error) {
	if opts.Color == "" {
		return cfg.Color, nil
	}
	if !config.ValidColor(opts.Color) {
		return "", fmt.Errorf("color: invalid mode %q (must be auto, always, or never)", opts.Color)
	}
	return opts.Color, nil
}

// colorEnabled reports whether highlighting applies. Auto mode highlights
// only when stdout is a terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
