package insight

import "context"

// SimulationCache keeps recent simulation results for identical pending
// transactions. Implementations must expire entries on their own.
type SimulationCache interface {
	// LoadSimulation returns the cached result for tx on chainID, reporting
	// false on a miss.
	LoadSimulation(ctx context.Context, chainID string, tx Transaction) (SimulationResult, bool, error)

	// SaveSimulation stores res for tx on chainID.
	SaveSimulation(ctx context.Context, chainID string, tx Transaction, res SimulationResult) error
}

// nopCache never hits and discards every save.
type nopCache struct{}

func (nopCache) LoadSimulation(context.Context, string, Transaction) (SimulationResult, bool, error) {
	return SimulationResult{}, false, nil
}

func (nopCache) SaveSimulation(context.Context, string, Transaction, SimulationResult) error {
	return nil
}
