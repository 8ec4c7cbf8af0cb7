package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txinsight/internal/insight"

	"github.com/ethereum/go-ethereum/crypto"
	redis "github.com/redis/go-redis/v9"
)

// simulationPrefix defines the base key prefix used for cached simulations.
const simulationPrefix = "simulation"

// simulationKey returns the Redis key under which the simulation of tx on
// chainID is cached. Transactions are identified by the Keccak-256 hash of
// their lower-cased fields.
//
// Format: "simulation:{chainID}:{hash}"
func simulationKey(chainID string, tx insight.Transaction) string {
	fingerprint := strings.ToLower(strings.Join([]string{tx.From, tx.To, tx.Value, tx.Data}, "|"))
	return fmt.Sprintf("%s:%s:%s", simulationPrefix, strings.ToLower(chainID), crypto.Keccak256Hash([]byte(fingerprint)).Hex())
}

// LoadSimulation implements insight.SimulationCache using plain string keys
// holding the JSON-encoded result.
func (c *client) LoadSimulation(ctx context.Context, chainID string, tx insight.Transaction) (insight.SimulationResult, bool, error) {
	data, err := c.conn.Get(ctx, simulationKey(chainID, tx)).Bytes()
	if errors.Is(err, redis.Nil) {
		return insight.SimulationResult{}, false, nil
	}
	if err != nil {
		return insight.SimulationResult{}, false, err
	}

	var res insight.SimulationResult
	if err := json.Unmarshal(data, &res); err != nil {
		return insight.SimulationResult{}, false, fmt.Errorf("decode cached simulation: %w", err)
	}

	return res, true, nil
}

// SaveSimulation implements insight.SimulationCache. Entries expire after the
// configured simulation TTL.
func (c *client) SaveSimulation(ctx context.Context, chainID string, tx insight.Transaction, res insight.SimulationResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, simulationKey(chainID, tx), data, c.simulationTTL).Err()
}

// Compile-time assertion to ensure *client satisfies the insight.SimulationCache interface
var _ insight.SimulationCache = new(client)
