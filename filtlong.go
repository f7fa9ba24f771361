// filtlong - filter long reads by length and quality

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "0.3.0"

// exitFunc allows tests to intercept os.Exit
var exitFunc = os.Exit

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// newLogger creates the stderr logger used for run diagnostics.
// Timestamps are left out so that repeated runs give identical output
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "filtlong",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// newRootCommand builds the filtlong command. Flag values are collected into
// a FilterConfig, which is the only thing the filtering code sees
func newRootCommand() *cobra.Command {
	var (
		cfg     = FilterConfig{WindowSize: DEFAULT_WINDOW_SIZE}
		outFile string
		verbose bool
		version bool
	)

	cmd := &cobra.Command{
		Use:           "filtlong [flags] input.fq",
		Short:         "Filter long reads by length and quality",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version {
				fmt.Fprintf(cmd.OutOrStdout(), "filtlong %s\n", VERSION)
				return nil
			}

			// If no input is provided, show help
			if len(args) == 0 {
				helpFunc(cmd, args)
				return nil
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)
			_, err := filterFile(args[0], outFile, cmd.OutOrStdout(), cfg, logger)
			return err
		},
	}

	cmd.SetHelpFunc(helpFunc)

	flags := cmd.Flags()
	intThresholdVarP(flags, &cfg.MinLength, "min_length", "l", "Minimum read length threshold")
	intThresholdVarP(flags, &cfg.MaxLength, "max_length", "L", "Maximum read length threshold")
	floatThresholdVarP(flags, &cfg.MinMeanQ, "min_mean_q", "q", "Minimum mean quality threshold")
	floatThresholdVarP(flags, &cfg.MinWindowQ, "min_window_q", "w", "Minimum window quality threshold")
	flags.IntVarP(&cfg.WindowSize, "window_size", "W", DEFAULT_WINDOW_SIZE, "Size of the sliding window used by --min_window_q")
	flags.StringVarP(&outFile, "out", "o", "-", "Output FASTQ file (default: stdout)")
	flags.BoolVarP(&verbose, "verbose", "V", false, "Log every filtered read")
	flags.BoolVarP(&version, "version", "v", false, "Show version information")

	return cmd
}

// run executes the command with the given arguments and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, red("Error: "+err.Error()))
		fmt.Fprintln(stderr, red("Try 'filtlong --help' for more information"))
		return 1
	}
	return 0
}

func main() {
	exitFunc(run(os.Args[1:], os.Stdout, os.Stderr))
}
