package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vito/peano/pkg/ioctx"
)

// Config holds the application configuration
type Config struct {
	Debug      bool
	ConfigFile string
	MaxDepth   int
	Jobs       int
}

func main() {
	ctx := context.Background()
	ctx = ioctx.StdoutToContext(ctx, os.Stdout)
	ctx = ioctx.StderrToContext(ctx, os.Stderr)
	if err := fang.Execute(ctx, rootCmd(),
		fang.WithVersion("v0.1.0"),
		fang.WithCommit("dev"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "peano [flags] [program...]",
		Short: "Evaluate signed Peano numeral programs",
		Long: `Peano evaluates the built-in demonstration programs under the prelude
and prints each result as an integer. With no arguments every program runs,
unless peano.toml selects a subset.`,
		Example: `  # Run every program
  peano

  # Run selected programs
  peano fib-of-fib mult

  # Show the evaluator's work
  peano --debug plus-minus

  # Fail fast on deep recursion
  peano --max-depth 500`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cfg)
			return run(ctx, cfg, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&cfg.ConfigFile, "config", "c", "", "Path to peano.toml (searched upward from the working directory if not specified)")
	cmd.Flags().IntVar(&cfg.MaxDepth, "max-depth", 0, "Maximum evaluation nesting depth (overrides peano.toml)")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "Programs to evaluate concurrently (overrides peano.toml)")

	cmd.AddCommand(listCmd())

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.Context())
		},
	}
}
