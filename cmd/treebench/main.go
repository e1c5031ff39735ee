package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/absolutelightning/go-ordered-trees/internal/bench"
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         level,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
}

func serveMetrics(logger *slog.Logger, addr string, metrics *bench.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed", slog.Any("error", err), slog.String("address", addr))
		}
	}()
	return srv
}

func rootCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var (
		trees       string
		metricsAddr string
		verbose     bool
	)
	cmd := &cobra.Command{
		Use:   "treebench",
		Short: "Time insert, lookup and delete across BST, AVL and Treap",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "number of keys per tree")
	cmd.Flags().StringVar(&cfg.Order, "order", cfg.Order, "key order: random or sequential")
	cmd.Flags().StringVar(&cfg.Keys, "keys", cfg.Keys, "key kind: int or uuid")
	cmd.Flags().StringVar(&trees, "trees", strings.Join(bench.AllTrees, ","), "comma separated trees to run")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "seed for the dataset and treap priorities, 0 for random")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := newLogger(verbose)
		slog.SetDefault(logger)

		cfg.Trees = strings.Split(trees, ",")
		metrics := bench.NewMetrics()
		runner, err := bench.NewRunner(cfg, logger, metrics)
		if err != nil {
			return err
		}

		if metricsAddr != "" {
			srv := serveMetrics(logger, metricsAddr, metrics)
			defer srv.Close()
			logger.Info("serving metrics", slog.String("address", metricsAddr))
		}

		results, err := runner.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		for _, res := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-7s %12s height=%d\n", res.Tree, res.Phase, res.Duration, res.Height)
		}
		return nil
	}
	return cmd
}

func main() {
	color.NoColor = false
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
