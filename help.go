// Help text for the filtlong command

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function
// Every option is listed with its short and long form, e.g. "-l[int], --min_length"
func helpFunc(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), `
%s

%s
  filtlong [flags] input.fq > output.fq

%s
  Input reads are written to the output unchanged and in their original
  order if they pass every threshold. Thresholds are inclusive, and an
  option that is not given does not filter anything.

%s
  %s
  %s
  %s

%s
  %s
  %s

%s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s
  %s

`,
		bold(cyan("filtlong")+" v."+VERSION+" - Quality filtering tool for long reads"),
		bold(yellow("Usage:")),
		bold(yellow("Description:")),
		bold(yellow("Thresholds:")),
		cyan("-l[int], --min_length")+"    : Minimum read length threshold",
		cyan("-L[int], --max_length")+"    : Maximum read length threshold",
		cyan("-q[float], --min_mean_q")+"  : Minimum mean quality threshold",
		bold(yellow("Window quality:")),
		cyan("-w[float], --min_window_q")+": Minimum window quality threshold (lowest mean quality of any window)",
		cyan("-W[int], --window_size")+"   : Size of the sliding window used by --min_window_q (default, 250)",
		bold(yellow("Other:")),
		cyan("-o[string], --out")+"        : Output FASTQ file (default, stdout; compressed by extension)",
		cyan("-V, --verbose")+"            : Log every filtered read",
		cyan("-h, --help")+"               : Show help message",
		cyan("-v, --version")+"            : Show version information",
		"Input may be gzip, xz, zstd or bzip2 compressed; use '-' for stdin",
		bold(yellow("Examples:")),
		cyan("filtlong --min_length 1000 --min_mean_q 10 input.fq.gz > output.fq"),
		cyan("filtlong -l 75 -L 120 input.fq -o output.fq.gz"),
		cyan("cat input.fq | filtlong -q 20 - > output.fq"),
	)
}
