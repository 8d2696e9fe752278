// Command logos aligns a text file onto the O7 line, one value per chunk.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/logos-dual/internal/align"
	"github.com/talgya/logos-dual/internal/pipeline"
)

const usage = "Usage: logos <input_genom.txt> <output_aligned.txt>"

func newRootCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "logos <input> <output>",
		Short: "Align a text file chunk by chunk",
		Long: `Reads <input> as UTF-8 text in chunks of 1024 characters and writes one
aligned value per chunk to <output>, each with 20 fractional digits.

The outcome is printed as PROCESS_STATUS: <status>. Every argument is a
path, including ones that start with "-".`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), logger, args)
		},
	}
}

// run always returns nil for pipeline outcomes; the status line is the
// result, and the exit code stays 0.
func run(stdout io.Writer, logger *slog.Logger, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	p := pipeline.New(align.New(), logger)
	res := p.Execute(args[0], args[1])
	fmt.Fprintf(stdout, "PROCESS_STATUS: %s\n", res.Status)
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := newRootCmd(logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
