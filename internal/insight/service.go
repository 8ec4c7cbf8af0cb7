// Package insight derives a human-readable summary of a pending transaction
// by simulating it and splitting the resulting asset changes into what leaves
// the sender and what arrives at it.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/pkg/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/txinsight/internal/insight"

// ErrSimulationPanicked wraps a panic raised while simulating a transaction
// or reading the simulation cache.
var ErrSimulationPanicked = errors.New("simulation panicked")

// Service derives insights for pending transactions.
type Service interface {
	// GetInsights simulates tx on chainID and summarizes its asset changes.
	// It never fails: every problem is reported inside the Result.
	GetInsights(ctx context.Context, tx Transaction, chainID string) Result
}

type service struct {
	simulators map[types.Hex]Simulator
	cache      SimulationCache

	tracer  trace.Tracer
	results metric.Int64Counter
}

var _ Service = (*service)(nil)

type config struct {
	cache SimulationCache
}

type Option func(*config)

// WithSimulationCache serves repeated simulations of the same transaction
// from cache. Only clean simulations (no error reported) are stored.
//
// A cached result reflects the chain when it was simulated, so it can lag
// balance or allowance changes for as long as the cache keeps the entry.
func WithSimulationCache(cache SimulationCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// New creates an insight Service. simulators maps a hex chain id to the
// Simulator for that chain; chains without an entry are unsupported.
func New(simulators map[string]Simulator, opts ...Option) *service {
	cfg := config{
		cache: nopCache{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	byChain := make(map[types.Hex]Simulator, len(simulators))
	for chainID, s := range simulators {
		byChain[canonicalChainID(chainID)] = s
	}

	results, err := otel.Meter(instrumentationName).Int64Counter(
		"insight.results",
		metric.WithDescription("Transaction insights derived, by result kind"),
	)
	if err != nil {
		logger.Warn(context.Background(), "insight counter unavailable", "error", err)
		results, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("insight.results")
	}

	return &service{
		simulators: byChain,
		cache:      cfg.cache,
		tracer:     otel.Tracer(instrumentationName),
		results:    results,
	}
}

func canonicalChainID(chainID string) types.Hex {
	return types.Hex(strings.TrimSpace(chainID)).Canonical()
}

func (s *service) GetInsights(ctx context.Context, tx Transaction, chainID string) (result Result) {
	ctx, span := s.tracer.Start(ctx, "insight.GetInsights", trace.WithAttributes(
		attribute.String("chain.id", chainID),
	))
	defer func() {
		span.SetAttributes(attribute.String("insight.kind", string(result.Kind)))
		if result.Kind == KindError {
			span.SetStatus(codes.Error, result.Error)
		}
		span.End()

		s.results.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(result.Kind)),
			attribute.String("chain.id", string(canonicalChainID(chainID))),
		))
	}()

	if !tx.HasData {
		return unknownResult()
	}

	simulator, ok := s.simulators[canonicalChainID(chainID)]
	if !ok {
		logger.Debug(ctx, "no simulator for chain", "chain.id", chainID)
		return unsupportedResult(chainID)
	}

	sim, err := s.cachedSimulate(ctx, simulator, tx, chainID)
	if err != nil {
		logger.Error(ctx, "transaction simulation failed",
			"chain.id", chainID,
			"tx.to", tx.To,
			"error", err,
		)
		return errorResult(err)
	}

	out, in := partition(sim.Changes, tx.From)
	if sim.Error != "" {
		return Result{
			Kind:    KindError,
			Message: "Simulation reported an error",
			Out:     out,
			In:      in,
			Changes: nonNil(sim.Changes),
			Error:   sim.Error,
		}
	}

	return Result{
		Kind:    KindSimulated,
		Out:     out,
		In:      in,
		Changes: nonNil(sim.Changes),
	}
}

// cachedSimulate consults the simulation cache before calling the simulator.
// Cache failures are logged and never fail the derivation. A panic raised by
// the simulator or the cache is converted into an error.
func (s *service) cachedSimulate(ctx context.Context, simulator Simulator, tx Transaction, chainID string) (sim SimulationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			sim, err = SimulationResult{}, fmt.Errorf("%w: %v", ErrSimulationPanicked, r)
		}
	}()

	key := string(canonicalChainID(chainID))

	cached, ok, err := s.cache.LoadSimulation(ctx, key, tx)
	if err != nil {
		logger.Warn(ctx, "simulation cache lookup failed", "chain.id", key, "error", err)
	}
	if ok {
		return cached, nil
	}

	sim, err = simulator.SimulateAssetChanges(ctx, tx)
	if err != nil {
		return SimulationResult{}, err
	}

	if sim.Error == "" {
		if err := s.cache.SaveSimulation(ctx, key, tx, sim); err != nil {
			logger.Warn(ctx, "simulation cache store failed", "chain.id", key, "error", err)
		}
	}

	return sim, nil
}

// partition splits changes into the labels of those sent by sender and those
// received by it, preserving order. Addresses compare case-insensitively. A
// self-transfer appears in both lists; changes touching neither side are
// dropped.
func partition(changes []AssetChange, sender string) (out, in []string) {
	out, in = []string{}, []string{}
	if sender == "" {
		return out, in
	}

	for _, c := range changes {
		if strings.EqualFold(c.From, sender) {
			out = append(out, c.Label())
		}
		if strings.EqualFold(c.To, sender) {
			in = append(in, c.Label())
		}
	}
	return out, in
}
