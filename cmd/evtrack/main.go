package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"evtrack/internal/config"
	"evtrack/internal/registry"
	"evtrack/internal/replay"
	"evtrack/internal/tracker"
	"evtrack/pkg/types"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliConfig is resolved in order: flag > config file > environment default.
type cliConfig struct {
	KindsDir string
	LogLevel string
	Metrics  bool
	log      zerolog.Logger
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// buildRootCmd constructs the Cobra command tree.
func buildRootCmd() *cobra.Command {
	cfg := &cliConfig{
		KindsDir: envStr("EVTRACK_KINDS_DIR", ""),
		LogLevel: envStr("EVTRACK_LOG_LEVEL", "info"),
	}
	var configPath string

	root := &cobra.Command{
		Use:           "evtrack",
		Short:         "Replay scripted event-tracking sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml/json/toml)")
	root.PersistentFlags().StringVar(&cfg.KindsDir, "kinds-dir", cfg.KindsDir, "Directory of event-kind declarations (defaults EVTRACK_KINDS_DIR)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error (defaults EVTRACK_LOG_LEVEL or info)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			fileCfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("kinds-dir") && fileCfg.KindsDir != "" {
				cfg.KindsDir = fileCfg.KindsDir
			}
			if !cmd.Flags().Changed("log-level") && fileCfg.LogLevel != "" {
				cfg.LogLevel = fileCfg.LogLevel
			}
			cfg.Metrics = fileCfg.Metrics
		}
		cfg.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(parseLevel(cfg.LogLevel)).
			With().Timestamp().Logger()
		return nil
	}

	root.AddCommand(buildKindsCmd(cfg), buildReplayCmd(cfg))
	return root
}

func buildKindsCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "kinds",
		Short:   "List declared event kinds",
		Example: "  evtrack kinds --kinds-dir ./kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.KindsDir == "" {
				return fmt.Errorf("no kinds directory configured (--kinds-dir or EVTRACK_KINDS_DIR)")
			}
			kinds, err := loadKinds(cfg)
			if err != nil {
				return err
			}
			for _, k := range kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k.Name, k.Description)
			}
			return nil
		},
	}
}

func buildReplayCmd(cfg *cliConfig) *cobra.Command {
	var withMetrics bool
	c := &cobra.Command{
		Use:     "replay <script>",
		Short:   "Run a scripted tracker session",
		Example: "  evtrack replay session.yaml --kinds-dir ./kinds --metrics",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			kinds, err := loadKinds(cfg)
			if err != nil {
				return err
			}
			var pub tracker.EventPublisher
			var reg *prometheus.Registry
			if withMetrics || cfg.Metrics {
				reg = prometheus.NewRegistry()
				pub = tracker.NewMetricsPublisher(reg)
			}
			sum := replay.NewRunner(cfg.log, kinds, pub).Run(script)
			for typ, n := range sum.Created {
				cfg.log.Info().Str("type", typ).Int("created", n).Int("submitted", sum.Submitted[typ]).Msg("type summary")
			}
			if sum.Misses > 0 {
				cfg.log.Warn().Int("misses", sum.Misses).Msg("lookups missed")
			}
			if reg != nil {
				return printCounters(cmd, reg)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&withMetrics, "metrics", false, "Print counter values after the run")
	return c
}

func loadKinds(cfg *cliConfig) ([]types.EventKind, error) {
	if cfg.KindsDir == "" {
		return nil, nil
	}
	kinds, err := registry.LoadDir(cfg.KindsDir)
	if err != nil {
		return nil, fmt.Errorf("load kinds: %w", err)
	}
	return kinds, nil
}

// printCounters dumps gathered counter samples as "name{type} value" lines.
func printCounters(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "type" {
					label = lp.GetValue()
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s{%s} %v\n", mf.GetName(), label, m.GetCounter().GetValue())
		}
	}
	return nil
}
