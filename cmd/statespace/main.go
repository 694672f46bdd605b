// statespace solves the built-in search problems from the command line.
//
// Usage:
//
//	statespace solve river [--pairs=3] [--strategy=bfs]
//	statespace solve route --from=Arad --to=Bucharest [--strategy=astar] [--map=file.yaml]
//	statespace strategies
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
