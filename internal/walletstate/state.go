package walletstate

import "github.com/gabapcia/txinsight/internal/pkg/types"

// Snap is an installed snap as reported by `wallet_getSnaps`.
type Snap struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Enabled bool   `json:"enabled"`
	Blocked bool   `json:"blocked"`
}

// State is the site's view of the wallet session.
type State struct {
	IsFlask       bool
	InstalledSnap *Snap
	ChainID       types.Hex
	Err           error
}

// Action is a state transition. The set of actions is closed: SetInstalled,
// SetFlaskDetected, SetChain and SetError.
type Action interface {
	isAction()
}

// SetInstalled records the installed snap, or nil when it is not installed.
type SetInstalled struct {
	Snap *Snap
}

// SetFlaskDetected records whether the wallet is the Flask flavor.
type SetFlaskDetected struct {
	IsFlask bool
}

// SetChain records the active chain id.
type SetChain struct {
	ChainID types.Hex
}

// SetError records the last error; a nil Err clears it.
type SetError struct {
	Err error
}

func (SetInstalled) isAction()     {}
func (SetFlaskDetected) isAction() {}
func (SetChain) isAction()         {}
func (SetError) isAction()         {}

// Reduce returns the state that results from applying a to s. It has no
// side effects; s is never modified.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetInstalled:
		s.InstalledSnap = a.Snap
	case SetFlaskDetected:
		s.IsFlask = a.IsFlask
	case SetChain:
		s.ChainID = a.ChainID
	case SetError:
		s.Err = a.Err
	}

	return s
}
