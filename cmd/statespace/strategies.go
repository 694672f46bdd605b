package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallnest/statespace/search"
)

var strategyDescriptions = map[search.Strategy]string{
	search.StrategyBreadthFirst:          "breadth-first, fewest actions",
	search.StrategyDepthFirstRecursive:   "depth-first with cycle checks, no bound",
	search.StrategyDepthLimited:          "depth-first up to --limit",
	search.StrategyIterativeDeepening:    "depth-limited with limits 1, 2, ... (bounded by --max-limit)",
	search.StrategyUniformCost:           "cheapest path first, optimal",
	search.StrategyGreedy:                "closest-looking node first",
	search.StrategyAStar:                 "g + h, optimal with an admissible h",
	search.StrategyAStarTree:             "A* without a reached table",
	search.StrategyWeightedAStar:         "g + w*h (--weight)",
	search.StrategyBreadthFirstBestFirst: "best-first on depth",
	search.StrategyDepthFirstBestFirst:   "best-first on negated depth",
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, s := range search.Strategies() {
				kind := "uninformed"
				if s.Informed() {
					kind = "informed"
				}
				fmt.Fprintf(out, "%-18s %-11s %s\n", s, kind, strategyDescriptions[s])
			}
		},
	}
}
