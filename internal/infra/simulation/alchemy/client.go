// Package alchemy implements insight.Simulator on top of Alchemy's
// `alchemy_simulateAssetChanges` JSON-RPC method.
package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabapcia/txinsight/internal/insight"
	"github.com/gabapcia/txinsight/internal/network"
	httptransport "github.com/gabapcia/txinsight/internal/pkg/transport/http"
	"github.com/gabapcia/txinsight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txinsight/internal/pkg/types"
)

const simulateAssetChangesMethod = "alchemy_simulateAssetChanges"

// client simulates transactions against a single Alchemy network endpoint.
type client struct {
	conn jsonrpc.Client
}

var _ insight.Simulator = (*client)(nil)

// NewClient creates a simulator that sends requests through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// Endpoint builds the JSON-RPC URL of n's simulation API for apiKey. It
// returns an empty string when the network has no simulation support.
func Endpoint(n network.Network, apiKey string) string {
	if n.SimulationURL == "" {
		return ""
	}

	return strings.TrimRight(n.SimulationURL, "/") + "/" + apiKey
}

// NewSimulators builds one simulator per network that has a simulation
// endpoint, keyed by chain id. When chainIDs is not empty only those chains
// are included.
func NewSimulators(registry *network.Registry, apiKey string, chainIDs []string, opts ...httptransport.Option) map[string]insight.Simulator {
	enabled := types.NewSet[types.Hex]()
	for _, id := range chainIDs {
		if n, ok := registry.Lookup(id); ok {
			enabled.Add(n.ChainID)
		}
	}

	simulators := make(map[string]insight.Simulator)
	for _, n := range registry.All() {
		if len(chainIDs) > 0 && !enabled.Has(n.ChainID) {
			continue
		}

		endpoint := Endpoint(n, apiKey)
		if endpoint == "" {
			continue
		}

		simulators[string(n.ChainID)] = NewClient(jsonrpc.NewClient(endpoint, opts...))
	}

	return simulators
}

type (
	// simulateRequest is the single positional parameter of the simulation call.
	simulateRequest struct {
		From  string `json:"from,omitempty"`
		To    string `json:"to,omitempty"`
		Value string `json:"value,omitempty"`
		Data  string `json:"data"`
	}

	// simulateResponse is the `result` object of the simulation call.
	simulateResponse struct {
		Changes []AssetChangeResponse `json:"changes"`
		Error   SimulationError       `json:"error"`
	}
)

// SimulateAssetChanges implements insight.Simulator.
func (c *client) SimulateAssetChanges(ctx context.Context, tx insight.Transaction) (insight.SimulationResult, error) {
	data, err := c.conn.Fetch(ctx, simulateAssetChangesMethod, simulateRequest{
		From:  tx.From,
		To:    tx.To,
		Value: tx.Value,
		Data:  tx.Data,
	})
	if err != nil {
		return insight.SimulationResult{}, redactEndpoint(err)
	}

	var res simulateResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return insight.SimulationResult{}, fmt.Errorf("decode simulation result: %w", err)
	}

	changes := make([]insight.AssetChange, len(res.Changes))
	for i, c := range res.Changes {
		changes[i] = c.toAssetChange()
	}

	return insight.SimulationResult{
		Changes: changes,
		Error:   string(res.Error),
	}, nil
}

// redactEndpoint drops the request URL from transport errors, since the
// endpoint path carries the API key.
func redactEndpoint(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return fmt.Errorf("%s simulation endpoint: %w", urlErr.Op, urlErr.Err)
}
