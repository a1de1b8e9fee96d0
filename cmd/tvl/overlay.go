package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nano-o/tvl/overlay"
	"github.com/nano-o/tvl/solver"
)

func overlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Synthesize a minimum-edge overlay graph",
		Long: `Loads the network and computes a minimum-edge undirected graph
satisfying slice coverage and diameter <= 2, printing the selected
edges as unordered pairs.`,
		RunE: runOverlay,
	}
	addNetworkFlags(cmd)
	cmd.Flags().Bool("top-tier-only", false, "restrict synthesis to the top-tier subnetwork")
	return cmd
}

func runOverlay(cmd *cobra.Command, args []string) error {
	n, err := loadNetwork(cmd)
	if err != nil {
		return err
	}

	topTierOnly, err := cmd.Flags().GetBool("top-tier-only")
	if err != nil {
		return err
	}
	if topTierOnly {
		n, err = n.TopTier()
		if err != nil {
			return err
		}
	}

	edges, err := overlay.Synthesize(context.Background(), n, solver.NewBacktracking())
	if err != nil {
		return err
	}

	for _, e := range edges {
		fmt.Printf("%s %s\n", e.U, e.V)
	}
	return nil
}
