package main

import (
	"github.com/spf13/cobra"

	"github.com/smallnest/statespace/log"
)

// app holds what the subcommands share once flags are parsed.
type app struct {
	configPath string
	flags      config

	cfg    config
	logger *log.GologLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := defaultConfig()

	cmd := &cobra.Command{
		Use:   "statespace",
		Short: "Solve state-space search problems",
		Long: "statespace runs the generic search strategies on the built-in problems:\n" +
			"the missionaries-and-cannibals river crossing and shortest routes on a road map.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML config file; flags override its values")
	f.StringVarP(&a.flags.Strategy, "strategy", "s", def.Strategy, "search strategy, see 'statespace strategies'")
	f.IntVar(&a.flags.DepthLimit, "limit", def.DepthLimit, "depth limit of dls")
	f.IntVar(&a.flags.MaxDepthLimit, "max-limit", def.MaxDepthLimit, "last depth limit ids tries (0 = unbounded)")
	f.Float64Var(&a.flags.Weight, "weight", def.Weight, "heuristic weight of weighted-astar")
	f.IntVar(&a.flags.CycleDepth, "cycle-depth", def.CycleDepth, "ancestors checked for cycles by tree searches")
	f.StringVarP(&a.flags.Format, "format", "o", def.Format, "output format: text, mermaid, dot or ascii")
	f.StringVar(&a.flags.LogLevel, "log-level", def.LogLevel, "debug, info, warn, error or none")
	f.BoolVar(&a.flags.Metrics, "metrics", def.Metrics, "print Prometheus metrics of the run")

	cmd.AddCommand(newSolveCmd(a))
	cmd.AddCommand(newStrategiesCmd())
	return cmd
}

// setup merges the config file with the flags that were set explicitly,
// validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = a.flags.Strategy
	}
	if flags.Changed("limit") {
		cfg.DepthLimit = a.flags.DepthLimit
	}
	if flags.Changed("max-limit") {
		cfg.MaxDepthLimit = a.flags.MaxDepthLimit
	}
	if flags.Changed("weight") {
		cfg.Weight = a.flags.Weight
	}
	if flags.Changed("cycle-depth") {
		cfg.CycleDepth = a.flags.CycleDepth
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("metrics") {
		cfg.Metrics = a.flags.Metrics
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = log.NewGologLoggerWithLevel(level)
	a.logger.Golog().SetOutput(cmd.ErrOrStderr())
	a.cfg = cfg

	a.logger.Debug("config: %+v", cfg)
	return nil
}
