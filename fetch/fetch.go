// Package fetch retrieves a network's validators.json from a live
// stellarbeat-shaped HTTP endpoint and caches it to disk (spec
// component G), mirroring the control flow of the original
// get_validators/get_config_from_stellarbeat: if --update was
// requested, always refetch and overwrite the cache; otherwise read
// the cache, falling back to a fetch only if no cache file exists yet.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/luxfi/log"
)

// DefaultEndpoint is stellarbeat's public node-data endpoint.
const DefaultEndpoint = "https://api.stellarbeat.io/v1/node"

// rawNode mirrors one element of stellarbeat's /v1/node response: the
// fields this module reads, plus the isValidator liveness flag used
// to filter the response down to validators.json's shape.
type rawNode struct {
	PublicKey   string          `json:"publicKey"`
	IsValidator bool            `json:"isValidator"`
	QuorumSet   json.RawMessage `json:"quorumSet"`
}

// record is one element of the validators.json this package produces:
// {"publicKey", "quorumSet"}, with non-validator nodes dropped.
type record struct {
	PublicKey string          `json:"publicKey"`
	QuorumSet json.RawMessage `json:"quorumSet"`
}

// Fetcher retrieves and caches the live validator set.
type Fetcher struct {
	Endpoint   string
	CachePath  string
	HTTPClient *http.Client
	Log        log.Logger
}

// NewFetcher returns a Fetcher with DefaultEndpoint and a 30-second
// HTTP client timeout.
func NewFetcher(cachePath string, logger log.Logger) *Fetcher {
	return &Fetcher{
		Endpoint:   DefaultEndpoint,
		CachePath:  cachePath,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Log:        logger,
	}
}

// Load returns the raw validators.json bytes. If update is true, it
// always fetches fresh data from Endpoint and overwrites the cache;
// otherwise it reads CachePath, fetching and populating the cache only
// on a cache miss.
func (f *Fetcher) Load(ctx context.Context, update bool) ([]byte, error) {
	if update {
		f.Log.Debug("updating validators cache", log.String("endpoint", f.Endpoint))
		return f.fetchAndCache(ctx)
	}

	data, err := os.ReadFile(f.CachePath)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("fetch: reading cache %s: %w", f.CachePath, err)
	}

	f.Log.Debug("no cache found, fetching", log.String("path", f.CachePath))
	return f.fetchAndCache(ctx)
}

func (f *Fetcher) fetchAndCache(ctx context.Context) ([]byte, error) {
	data, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(f.CachePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("fetch: writing cache %s: %w", f.CachePath, err)
	}
	return data, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: building request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: requesting %s: %w", f.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: %s returned status %d", f.Endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: reading response body: %w", err)
	}

	var nodes []rawNode
	if err := json.Unmarshal(body, &nodes); err != nil {
		return nil, fmt.Errorf("fetch: decoding response: %w", err)
	}

	records := make([]record, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsValidator {
			continue
		}
		records = append(records, record{PublicKey: n.PublicKey, QuorumSet: n.QuorumSet})
	}

	out, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("fetch: re-encoding filtered records: %w", err)
	}
	f.Log.Debug("fetched validators", log.Int("count", len(records)))
	return out, nil
}
