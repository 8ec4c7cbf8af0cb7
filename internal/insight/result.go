package insight

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind classifies an insight Result.
type Kind string

const (
	// KindSimulated means the transaction was simulated successfully.
	KindSimulated Kind = "simulated"

	// KindUnknown means the transaction carries no analyzable data.
	KindUnknown Kind = "unknown"

	// KindUnsupported means the chain has no simulation support.
	KindUnsupported Kind = "unsupported"

	// KindError means the simulation failed or reported an error.
	KindError Kind = "error"
)

// Message used for transactions without calldata.
const unknownTransactionMessage = "Unknown transaction"

// Result is the insight derived for one pending transaction.
//
// Out lists what leaves the sender, In what arrives at it, each rendered as
// "<amount> <symbol>". Changes holds the raw simulation on success and Error
// the failure detail otherwise. Out, In and the simulation payload are always
// present in the JSON form, so hosts can render any result.
type Result struct {
	Kind    Kind
	Message string
	Out     []string
	In      []string
	Changes []AssetChange
	Error   string
}

// wireResult is the JSON layout handed to the host wallet.
type wireResult struct {
	Type       Kind            `json:"type"`
	Message    string          `json:"message,omitempty"`
	Out        []string        `json:"_out"`
	In         []string        `json:"_in"`
	Simulation json.RawMessage `json:"simulation"`
}

// nonNil returns s, or an empty slice when s is nil.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// MarshalJSON encodes r with `simulation` holding the change list, or the
// error string when r carries one.
func (r Result) MarshalJSON() ([]byte, error) {
	var (
		simulation []byte
		err        error
	)
	if r.Error != "" {
		simulation, err = json.Marshal(r.Error)
	} else {
		simulation, err = json.Marshal(nonNil(r.Changes))
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(wireResult{
		Type:       r.Kind,
		Message:    r.Message,
		Out:        nonNil(r.Out),
		In:         nonNil(r.In),
		Simulation: simulation,
	})
}

// UnmarshalJSON decodes the wire layout produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = Result{
		Kind:    w.Type,
		Message: w.Message,
		Out:     nonNil(w.Out),
		In:      nonNil(w.In),
		Changes: []AssetChange{},
	}

	simulation := bytes.TrimSpace(w.Simulation)
	switch {
	case len(simulation) == 0 || bytes.Equal(simulation, []byte("null")):
	case simulation[0] == '"':
		if err := json.Unmarshal(simulation, &r.Error); err != nil {
			return err
		}
	default:
		if err := json.Unmarshal(simulation, &r.Changes); err != nil {
			return fmt.Errorf("decode simulation: %w", err)
		}
	}

	return nil
}

// unknownResult is returned for transactions without calldata.
func unknownResult() Result {
	return Result{
		Kind:    KindUnknown,
		Message: unknownTransactionMessage,
		Out:     []string{},
		In:      []string{},
		Changes: []AssetChange{},
	}
}

// unsupportedResult is returned for chains without a simulator.
func unsupportedResult(chainID string) Result {
	return Result{
		Kind:    KindUnsupported,
		Message: fmt.Sprintf("Unsupported network %s", chainID),
		Out:     []string{},
		In:      []string{},
		Changes: []AssetChange{},
	}
}

// errorResult is returned when the simulation could not be obtained.
func errorResult(err error) Result {
	return Result{
		Kind:    KindError,
		Message: "Unable to fetch simulation results",
		Out:     []string{},
		In:      []string{},
		Changes: []AssetChange{},
		Error:   err.Error(),
	}
}
