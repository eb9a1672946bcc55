// Command tabusearch solves SCQBF instances with Tabu Search.
//
//	tabusearch solve instances/n25.txt -m std+int --time-limit 5m
//	tabusearch generate --n 100 --density 0.05 -o instances/n100.txt
//
// SIGINT and SIGTERM stop the search; the best solution found so far is
// still reported.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabusearch",
		Short:         "Tabu Search for set-covering quadratic binary problems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newGenerateCmd())

	return root
}
