package main

import (
	"context"
	"os"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/nano-o/tvl/fetch"
	"github.com/nano-o/tvl/quorum"
)

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("update", false, "refetch the network from the live source before analyzing")
	cmd.Flags().String("network", "", "path to a validators.json file to load instead of the live source")
	cmd.Flags().String("cache", "validators.json", "on-disk cache path used when --network is not given")
}

// loadNetwork realizes spec.md §6.4: --network FILE loads straight
// from disk; otherwise the --cache file is read, refetching from the
// live source when --update is set or the cache file does not exist.
func loadNetwork(cmd *cobra.Command) (*quorum.Network, error) {
	networkPath, err := cmd.Flags().GetString("network")
	if err != nil {
		return nil, err
	}

	var data []byte
	if networkPath != "" {
		data, err = os.ReadFile(networkPath)
		if err != nil {
			return nil, err
		}
	} else {
		cachePath, err := cmd.Flags().GetString("cache")
		if err != nil {
			return nil, err
		}
		update, err := cmd.Flags().GetBool("update")
		if err != nil {
			return nil, err
		}

		f := fetch.NewFetcher(cachePath, log.NewNoOpLogger())
		data, err = f.Load(context.Background(), update)
		if err != nil {
			return nil, err
		}
	}

	return quorum.LoadNetwork(data)
}
