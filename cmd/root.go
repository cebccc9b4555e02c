// Package cmd contains the command-line interface for kitty.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eykd/kitty-go/internal/domain"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

var rootCmd *cobra.Command

func init() {
	rootCmd = NewRootCmd()
}

// rootFlags holds the parsed command-line flags of one command instance.
type rootFlags struct {
	numberNonBlank  bool
	number          bool
	showEnds        bool
	squeezeBlank    bool
	showTabs        bool
	showNonprinting bool
	showAll         bool
	nonprintingEnds bool
	nonprintingTabs bool
	unbuffered      bool
	lock            bool
	verbose         bool
}

// options folds the shorthand combinations into the six display flags.
func (f *rootFlags) options() domain.Options {
	opts := domain.Options{
		NumberNonBlank:       f.numberNonBlank,
		NumberAllLines:       f.number,
		ShowLineEnd:          f.showEnds,
		IgnoreAdjacentBlanks: f.squeezeBlank,
		DisplayTabSymbol:     f.showTabs,
		ShowUnprintables:     f.showNonprinting,
	}
	if f.showAll {
		opts.ShowUnprintables = true
		opts.ShowLineEnd = true
		opts.DisplayTabSymbol = true
	}
	if f.nonprintingEnds {
		opts.ShowUnprintables = true
		opts.ShowLineEnd = true
	}
	if f.nonprintingTabs {
		opts.ShowUnprintables = true
		opts.DisplayTabSymbol = true
	}
	return opts
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "kitty [flags] [FILE]",
		Short: "Print a file to standard output, optionally marking numbers, ends and hidden characters",
		Long: "kitty writes FILE, or standard input when FILE is absent or -, to standard output.\n" +
			"Display flags number lines, mark line ends, squeeze blank runs and reveal tabs\n" +
			"and non-printing bytes.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runKitty(cmd, path, f)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.numberNonBlank, "number-nonblank", "b", false, "number non-blank output lines, overrides -n")
	flags.BoolVarP(&f.number, "number", "n", false, "number all output lines")
	flags.BoolVarP(&f.showEnds, "show-ends", "E", false, "display $ at the end of each line")
	flags.BoolVarP(&f.squeezeBlank, "squeeze-blank", "s", false, "suppress repeated blank output lines")
	flags.BoolVarP(&f.showTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	flags.BoolVarP(&f.showNonprinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	flags.BoolVarP(&f.showAll, "show-all", "A", false, "equivalent to -vET")
	flags.BoolVarP(&f.nonprintingEnds, "show-nonprinting-ends", "e", false, "equivalent to -vE")
	flags.BoolVarP(&f.nonprintingTabs, "show-nonprinting-tabs", "t", false, "equivalent to -vT")
	flags.BoolVarP(&f.unbuffered, "unbuffered", "u", false, "(ignored)")
	flags.BoolVar(&f.lock, "lock", false, "hold a shared advisory lock on FILE while reading it")
	flags.BoolVar(&f.verbose, "verbose", false, "Enable debug logging to stderr")

	return cmd
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
