package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/smallnest/statespace/metrics"
	"github.com/smallnest/statespace/problems/rivercrossing"
	"github.com/smallnest/statespace/problems/route"
	"github.com/smallnest/statespace/search"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a built-in problem",
	}
	cmd.AddCommand(newRiverCmd(a))
	cmd.AddCommand(newRouteCmd(a))
	return cmd
}

func newRiverCmd(a *app) *cobra.Command {
	var pairs, capacity int

	cmd := &cobra.Command{
		Use:   "river",
		Short: "Missionaries and cannibals crossing a river",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pairs < 1 {
				return fmt.Errorf("--pairs must be at least 1, got %d", pairs)
			}
			p := rivercrossing.New(
				rivercrossing.State{Boat: rivercrossing.Left, LeftMissionaries: pairs, LeftCannibals: pairs},
				rivercrossing.State{Boat: rivercrossing.Right, RightMissionaries: pairs, RightCannibals: pairs},
				capacity,
			)
			return solve(cmd, a, p)
		},
	}

	f := cmd.Flags()
	f.IntVar(&pairs, "pairs", 3, "missionary/cannibal pairs on the left bank")
	f.IntVar(&capacity, "capacity", rivercrossing.DefaultCapacity, "people the boat holds")
	return cmd
}

func newRouteCmd(a *app) *cobra.Command {
	var from, to, mapPath string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest drive between two cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("map") {
				mapPath = a.cfg.Map
			}
			m := route.Romania()
			if mapPath != "" {
				var err error
				if m, err = route.LoadMapFile(mapPath); err != nil {
					return err
				}
			}
			p, err := route.NewProblem(m, from, to)
			if err != nil {
				return err
			}
			return solve(cmd, a, p)
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "start city (required)")
	f.StringVar(&to, "to", "", "destination city (required)")
	f.StringVar(&mapPath, "map", "", "YAML road map (default: built-in Romania map)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// solve runs the configured strategy on p and prints the result. Failure
// and cutoff are printed like solutions; only engine errors fail the
// command.
func solve[S comparable, A any](cmd *cobra.Command, a *app, p search.Problem[S, A]) error {
	strategy, err := search.ParseStrategy(a.cfg.Strategy)
	if err != nil {
		return err
	}

	opts := append(a.cfg.searchOptions(), search.WithLogger(a.logger))

	var reg *prometheus.Registry
	if a.cfg.Metrics {
		reg = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, search.WithListener(collector))
	}

	res, err := search.Run(cmd.Context(), strategy, p, nil, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", strategy, err)
	}
	a.logger.Info("%s: %s, %d expanded, %d generated", strategy, res.Outcome, res.Stats.Expanded, res.Stats.Generated)

	out := cmd.OutOrStdout()
	if err := render(out, a.cfg.Format, strategy, res); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(out, reg)
	}
	return nil
}
