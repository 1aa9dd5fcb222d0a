package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/riposte/internal/bench"
	http "github.com/wesleyorama2/riposte/internal/http"
	"github.com/wesleyorama2/riposte/internal/output"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Repeat a GET request and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headerLines, _ := cmd.Flags().GetStringArray("header")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		pause, _ := cmd.Flags().GetDuration("pause")
		requests, _ := cmd.Flags().GetInt("requests")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if !noColor && !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		logger := newLogger(verbose)
		formatter := output.NewFormatter(verbose, noColor)

		headers := http.ParseHeaderLines(headerLines, logger)

		req := http.NewRequest("GET", args[0]).
			WithHeaders(headers).
			WithPause(pause).
			WithTimeout(timeout)

		dispatcher := http.NewDispatcher(http.WithLogger(logger))

		summary, err := bench.Run(context.Background(), dispatcher, req, http.Bytes(), bench.Options{
			Requests:    requests,
			Concurrency: concurrency,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(formatter.FormatBenchSummary(summary))
	},
}

func init() {
	benchCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	benchCmd.Flags().DurationP("timeout", "t", http.DefaultTimeout, "Per-request timeout, measured from dispatch")
	benchCmd.Flags().Duration("pause", 0, "Per-request delay before dispatch")
	benchCmd.Flags().IntP("requests", "n", 10, "Total number of requests to issue")
	benchCmd.Flags().Int("concurrency", 1, "Number of concurrent workers")
	benchCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	benchCmd.Flags().Bool("no-color", false, "Disable colored output")
}
