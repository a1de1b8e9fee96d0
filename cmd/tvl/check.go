package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nano-o/tvl/closure"
	"github.com/nano-o/tvl/intertwined"
	"github.com/nano-o/tvl/solver"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the network is intertwined",
		Long: `Loads the network and decides whether every pair of validators is
intertwined (quorum intersection holds network-wide). Prints one of
true, false, or unknown to stdout.`,
		RunE: runCheck,
	}
	addNetworkFlags(cmd)
	cmd.Flags().String("pair", "", "comma-separated validator pair \"A,B\" to check instead of the whole network")
	cmd.Flags().Bool("report-build-stats", false, "print closure-axiom build duration and conjunct count to stderr")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	n, err := loadNetwork(cmd)
	if err != nil {
		return err
	}

	pair, err := cmd.Flags().GetString("pair")
	if err != nil {
		return err
	}
	reportBuildStats, err := cmd.Flags().GetBool("report-build-stats")
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := closure.NewBuildMetrics(reg)
	if err != nil {
		return fmt.Errorf("check: registering build metrics: %w", err)
	}

	adapter := solver.NewBacktracking()
	ctx := context.Background()

	var outcome intertwined.Outcome
	if pair != "" {
		p, q, ok := splitPair(pair)
		if !ok {
			return fmt.Errorf("check: --pair must be \"A,B\", got %q", pair)
		}
		outcome, err = intertwined.CheckPair(ctx, n, p, q, adapter, metrics)
	} else {
		outcome, err = intertwined.CheckNetwork(ctx, n, adapter, metrics)
	}
	if err != nil {
		return err
	}

	if reportBuildStats {
		seconds, conjuncts := metrics.Snapshot()
		fmt.Fprintf(cmd.ErrOrStderr(), "closure axiom: %d conjuncts, %.3fs to build\n", conjuncts, seconds)
	}

	fmt.Println(outcome.String())
	return nil
}

func splitPair(s string) (p, q string, ok bool) {
	for i := range s {
		if s[i] == ',' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
