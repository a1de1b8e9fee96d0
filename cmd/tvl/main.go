package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tvl",
	Short: "Analyze Stellar-style federated quorum configurations",
	Long: `tvl loads a network of validators and their quorum sets, then answers
two structural questions: whether every pair of validators is
intertwined (quorum intersection), and what the minimum-edge overlay
graph satisfying slice coverage and diameter 2 looks like.`,
}

func main() {
	rootCmd.AddCommand(
		checkCmd(),
		overlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
