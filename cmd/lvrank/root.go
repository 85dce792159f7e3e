// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/edgelist"
	"github.com/katalvlaran/lvrank/metrics"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/report"
)

// errNoInput is returned when neither an argument nor the config names a file.
var errNoInput = errors.New("lvrank: no edge-list file given")

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"epsilon":        config.KeyEpsilon,
	"max-iterations": config.KeyMaxIterations,
	"damping":        config.KeyDamping,
	"dangling":       config.KeyDangling,
	"jump":           config.KeyJump,
	"sorted":         config.KeySortByRank,
	"format":         config.KeyFormat,
	"header":         config.KeyHeader,
	"log-level":      config.KeyLogLevel,
	"metrics-file":   config.KeyMetricsFile,
	"debug":          config.KeyDebug,
}

// newRootCmd builds the lvrank command writing ranks to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lvrank [edge-list-file]",
		Short: "Rank graph vertices with PageRank",
		Long: "lvrank reads a directed edge list (one \"source target\" pair per line), " +
			"builds a dense column-stochastic transition matrix and solves it by power iteration.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if len(args) == 1 {
				v.Set(config.KeyInput, args[0])
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			return run(cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("config", "", "config file (default .lvrank.yaml)")
	f.Float64("epsilon", rank.DefaultEpsilon, "convergence threshold on the Euclidean step size")
	f.Int("max-iterations", rank.DefaultMaxIterations, "power-iteration budget")
	f.Float64("damping", rank.DefaultDamping, "random-jump probability d in [0,1]")
	f.Bool("dangling", true, "spread dangling vertices uniformly (off leaks probability mass)")
	f.Bool("jump", true, "mix in the random jump (damping)")
	f.Bool("sorted", true, "sort by decreasing rank instead of vertex ID")
	f.String("format", string(report.Text), "output format: text or yaml")
	f.Bool("header", true, "print a header line before rank-sorted text output")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("metrics-file", "", "write Prometheus metrics to this textfile")
	f.Bool("debug", false, "dump the final transition matrix to stderr")

	bindFlags(v, f)
	cmd.AddCommand(newGenerateCmd(stdout))

	return cmd
}

// bindFlags binds every flag in flagKeys so explicit flags override file and env.
func bindFlags(v *viper.Viper, f *pflag.FlagSet) {
	for name, key := range flagKeys {
		_ = v.BindPFlag(key, f.Lookup(name))
	}
}

// initConfig wires the optional config file and LVRANK_* environment.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".lvrank")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil // defaults only
		}
		return fmt.Errorf("lvrank: read config: %w", err)
	}

	return nil
}

// run executes load → solve → report for one validated configuration.
func run(cfg config.Config, stdout, stderr io.Writer) error {
	if cfg.Input == "" {
		return errNoInput
	}

	// run_id correlates one invocation's log lines across aggregated stderr.
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With("run_id", uuid.NewString())

	logger.Info("loading graph", "component", "lvrank", "input", cfg.Input)
	g, err := edgelist.Load(cfg.Input)
	if err != nil {
		logger.Error("failed to load graph", "component", "lvrank", "error", err)
		return err
	}
	logger.Info("graph loaded",
		"component", "lvrank",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	opts := []rank.Option{rank.WithLogger(logger)}
	var reg *metrics.Registry
	if cfg.MetricsFile != "" {
		reg = metrics.NewRegistry()
		opts = append(opts, rank.WithRecorder(reg))
	}

	md := rank.NewModel(opts...)
	res, err := md.Run(g, cfg.RankConfig())
	if err != nil {
		return err
	}

	if err = cfg.Reporter().Write(stdout, res); err != nil {
		return err
	}

	if cfg.Debug {
		m, err := md.Transition()
		if err != nil {
			return err
		}
		if err = report.WriteMatrix(stderr, m); err != nil {
			return err
		}
	}

	if reg != nil {
		if err = reg.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Debug("metrics written", "component", "lvrank", "path", cfg.MetricsFile)
	}

	return nil
}
