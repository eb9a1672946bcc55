package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabusearch/internal/config"
	"github.com/katalvlaran/tabusearch/internal/logging"
	"github.com/katalvlaran/tabusearch/internal/report"
	"github.com/katalvlaran/tabusearch/metrics"
	"github.com/katalvlaran/tabusearch/scqbf"
	"github.com/katalvlaran/tabusearch/tabu"
)

func newSolveCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "solve <instance>",
		Short: "Maximize the SCQBF objective of an instance file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return runSolve(cmd, args[0], cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, cfg config.Config) error {
	log, err := logging.New(cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		return err
	}
	ctx := logr.NewContext(cmd.Context(), log)

	inst, err := scqbf.Load(path)
	if err != nil {
		return err
	}
	eval, err := scqbf.NewInverse(inst)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec := metrics.NewRecorder(prometheus.Labels{"instance": name, "method": cfg.Method})
	opts := cfg.EngineOptions()
	opts.Observer = rec

	log.Info("solving", "instance", path, "n", inst.N, "method", cfg.Method,
		"tenure", opts.Tenure, "strategy", opts.Strategy.String(), "timeLimit", opts.TimeLimit)
	eng, err := tabu.New[int](eval, tabu.WithOptions(opts))
	if err != nil {
		return err
	}
	res, err := eng.Solve(ctx)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}

	if cfg.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(err, "writing metrics", "file", cfg.MetricsFile)
		}
	}

	out, closeOut, err := openOutput(cmd.OutOrStdout(), cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	return report.New(name, cfg.Method, eval.Inverse(), opts, res).Write(out, cfg.ReportFormat)
}

// openOutput returns stdout for an empty path, else creates the file and
// any missing parent directories.
func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
