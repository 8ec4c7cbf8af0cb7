// Package walletstate tracks the site's wallet session: which wallet flavor is
// connected, whether the snap is installed and which chain is active. Every
// update flows through a single Store via the pure Reduce transition.
package walletstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/pkg/resilience/retry"
	"github.com/gabapcia/txinsight/internal/pkg/types"
	"github.com/gabapcia/txinsight/internal/pkg/x/chflow"

	"github.com/sourcegraph/conc"
)

// DefaultSnapID is the origin of a snap served by the local development server.
const DefaultSnapID = "local:http://localhost:8080"

const helloMethod = "hello"

var (
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrChainNotAdded is returned by a Provider when the wallet does not know the requested chain.
	ErrChainNotAdded = errors.New("chain not added to wallet")

	// ErrUserRejected is returned by a Provider when the user declines a wallet prompt.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrUnknownNetwork is returned when switching to a chain missing from the network table.
	ErrUnknownNetwork = errors.New("unknown network")
)

// SnapRequest is the request forwarded to the snap by `wallet_invokeSnap`.
type SnapRequest struct {
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// Provider is the wallet provider RPC surface used by the site.
type Provider interface {
	ClientVersion(ctx context.Context) (string, error)
	GetSnaps(ctx context.Context) (map[string]Snap, error)
	EnableSnap(ctx context.Context, snapID string, params map[string]any) error
	InvokeSnap(ctx context.Context, snapID string, req SnapRequest) (json.RawMessage, error)
	ChainID(ctx context.Context) (string, error)
	SwitchChain(ctx context.Context, chainID string) error
	AddChain(ctx context.Context, params network.AddChainParams) error

	// WatchChain streams the chain id every time the wallet switches network.
	// The channel is closed when ctx is done.
	WatchChain(ctx context.Context) (<-chan string, error)
}

// Service drives the wallet session.
type Service interface {
	Start(ctx context.Context) error
	Connect(ctx context.Context) error
	SendHello(ctx context.Context) (json.RawMessage, error)
	SwitchChain(ctx context.Context, chainID string) error
	ToggleChain(ctx context.Context) error
	Run(ctx context.Context, name string, fn func(ctx context.Context) error) error
	ShouldDisplayReconnect() bool
	State() State
	Subscribe(l Listener) func()
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	provider    Provider
	networks    *network.Registry
	store       *Store
	snapID      string
	snapVersion string

	retry retry.Retry
}

var _ Service = (*service)(nil)

type config struct {
	snapID      string
	snapVersion string
	retry       retry.Retry
	store       *Store
}

type Option func(*config)

// WithSnap sets the snap id to detect and connect, and optionally the exact
// version required. An empty version accepts any installed version.
func WithSnap(id, version string) Option {
	return func(c *config) {
		c.snapID = id
		c.snapVersion = version
	}
}

// WithRetry retries the initial provider probes.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithStore replaces the session store.
func WithStore(s *Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// New creates a wallet session Service.
func New(provider Provider, networks *network.Registry, opts ...Option) *service {
	cfg := config{
		snapID: DefaultSnapID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.store == nil {
		cfg.store = NewStore()
	}

	return &service{
		provider:    provider,
		networks:    networks,
		store:       cfg.store,
		snapID:      cfg.snapID,
		snapVersion: cfg.snapVersion,
		retry:       cfg.retry,
	}
}

// probe runs fn through the retry helper when one is configured.
func (s *service) probe(ctx context.Context, fn func() error) error {
	if s.retry == nil {
		return fn()
	}

	return s.retry.Execute(ctx, fn)
}

// Start detects the wallet flavor and, on Flask, the installed snap and active
// chain, then follows chain changes until Close or ctx is done.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var version string
	err := s.probe(ctx, func() (err error) {
		version, err = s.provider.ClientVersion(ctx)
		return err
	})
	if err != nil {
		cancel()
		return fmt.Errorf("detect wallet flavor: %w", err)
	}

	isFlask := strings.Contains(strings.ToLower(version), "flask")
	s.store.Dispatch(SetFlaskDetected{IsFlask: isFlask})

	if isFlask {
		var wg conc.WaitGroup
		wg.Go(func() { s.store.Dispatch(SetInstalled{Snap: s.detectSnap(ctx)}) })
		wg.Go(func() { s.detectChain(ctx) })
		wg.Wait()
	}

	done := make(chan struct{})
	chainCh, err := s.provider.WatchChain(ctx)
	if err != nil {
		logger.Warn(ctx, "chain changes unavailable", "error", err)
		close(done)
	} else {
		go s.followChain(ctx, chainCh, done)
	}

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

// detectSnap returns the configured snap if installed. Lookup failures are
// logged and reported as not installed.
func (s *service) detectSnap(ctx context.Context) *Snap {
	snaps, err := s.provider.GetSnaps(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to obtain installed snap", "snap.id", s.snapID, "error", err)
		return nil
	}

	for id, snap := range snaps {
		if snap.ID == "" {
			snap.ID = id
		}

		if snap.ID == s.snapID && (s.snapVersion == "" || snap.Version == s.snapVersion) {
			return &snap
		}
	}

	return nil
}

func (s *service) detectChain(ctx context.Context) {
	var chainID string
	err := s.probe(ctx, func() (err error) {
		chainID, err = s.provider.ChainID(ctx)
		return err
	})
	if err != nil {
		logger.Error(ctx, "failed to read chain id", "error", err)
		s.store.Dispatch(SetError{Err: fmt.Errorf("read chain id: %w", err)})
		return
	}

	s.store.Dispatch(SetChain{ChainID: types.Hex(chainID)})
}

// followChain funnels chain changes into the store until ctx is done or the
// channel is closed.
func (s *service) followChain(ctx context.Context, chainCh <-chan string, done chan<- struct{}) {
	defer close(done)

	chflow.Forward(ctx, chainCh, func(chainID string) {
		logger.Debug(ctx, "chain changed", "chain.id", chainID)
		s.store.Dispatch(SetChain{ChainID: types.Hex(chainID)})
	})
}

// Connect installs (or reconnects) the snap and refreshes its detection.
func (s *service) Connect(ctx context.Context) error {
	params := map[string]any{}
	if s.snapVersion != "" {
		params["version"] = s.snapVersion
	}

	if err := s.provider.EnableSnap(ctx, s.snapID, params); err != nil {
		return fmt.Errorf("connect snap: %w", err)
	}

	s.store.Dispatch(SetInstalled{Snap: s.detectSnap(ctx)})
	return nil
}

// SendHello invokes the snap's demo "hello" method and returns its result.
func (s *service) SendHello(ctx context.Context) (json.RawMessage, error) {
	res, err := s.provider.InvokeSnap(ctx, s.snapID, SnapRequest{Method: helloMethod})
	if err != nil {
		return nil, fmt.Errorf("invoke snap: %w", err)
	}

	return res, nil
}

// SwitchChain asks the wallet to switch to chainID, adding the chain from the
// network table when the wallet does not know it yet.
func (s *service) SwitchChain(ctx context.Context, chainID string) error {
	n, ok := s.networks.Lookup(chainID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNetwork, chainID)
	}

	err := s.provider.SwitchChain(ctx, string(n.ChainID))
	if errors.Is(err, ErrChainNotAdded) {
		logger.Info(ctx, "chain not added, adding it", "chain.id", n.ChainID)
		if err := s.provider.AddChain(ctx, n.AddChainParams()); err != nil {
			return fmt.Errorf("add chain %s: %w", n.ChainID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("switch chain %s: %w", n.ChainID, err)
	}

	s.store.Dispatch(SetChain{ChainID: n.ChainID})
	return nil
}

// ToggleChain switches between Ethereum Goerli and Polygon Mumbai.
func (s *service) ToggleChain(ctx context.Context) error {
	target := network.EthereumGoerli
	if s.store.State().ChainID.Canonical() == network.EthereumGoerli {
		target = network.PolygonMumbai
	}

	return s.SwitchChain(ctx, string(target))
}

// Run executes a user action. A failure is logged and surfaced in the state
// as a transient error.
func (s *service) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUserRejected) {
		logger.Info(ctx, "wallet action rejected by user", "action", name)
	} else {
		logger.Error(ctx, "wallet action failed", "action", name, "error", err)
	}

	s.store.Dispatch(SetError{Err: fmt.Errorf("%s: %w", name, err)})
	return err
}

// ShouldDisplayReconnect reports whether the installed snap is served locally
// and may therefore be reinstalled from source.
func (s *service) ShouldDisplayReconnect() bool {
	snap := s.store.State().InstalledSnap
	return snap != nil && strings.HasPrefix(snap.ID, "local:")
}

func (s *service) State() State {
	return s.store.State()
}

func (s *service) Subscribe(l Listener) func() {
	return s.store.Subscribe(l)
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.store.Close()
	s.isStarted = false
	s.closeFunc = nil
}
