// Package wallet talks to the user's wallet provider over JSON-RPC. It backs
// both the site's session (walletstate.Provider) and the canned transaction
// dispatcher (operation.Wallet).
package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/operation"
	"github.com/gabapcia/txinsight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txinsight/internal/walletstate"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/websocket"
)

const (
	clientVersionMethod   = "web3_clientVersion"
	getSnapsMethod        = "wallet_getSnaps"
	enableMethod          = "wallet_enable"
	invokeSnapMethod      = "wallet_invokeSnap"
	chainIDMethod         = "eth_chainId"
	switchChainMethod     = "wallet_switchEthereumChain"
	addChainMethod        = "wallet_addEthereumChain"
	requestAccountsMethod = "eth_requestAccounts"
	sendTransactionMethod = "eth_sendTransaction"
)

type client struct {
	conn         jsonrpc.Client
	eventsURL    string
	pollInterval time.Duration
	dialer       *websocket.Dialer
}

var (
	_ walletstate.Provider = (*client)(nil)
	_ operation.Wallet     = (*client)(nil)
)

type config struct {
	eventsURL    string
	pollInterval time.Duration
	dialer       *websocket.Dialer
}

type Option func(*config)

// WithEventStream follows chain changes through the websocket event stream at
// url instead of polling `eth_chainId`.
func WithEventStream(url string) Option {
	return func(c *config) {
		c.eventsURL = url
	}
}

// WithPollInterval sets how often `eth_chainId` is polled when no event
// stream is configured.
// Default: 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithDialer replaces the websocket dialer used for the event stream.
func WithDialer(d *websocket.Dialer) Option {
	return func(c *config) {
		c.dialer = d
	}
}

// NewClient creates a wallet provider client that sends requests through conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		pollInterval: 2 * time.Second,
		dialer:       websocket.DefaultDialer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:         conn,
		eventsURL:    cfg.eventsURL,
		pollInterval: cfg.pollInterval,
		dialer:       cfg.dialer,
	}
}

// call performs method and decodes its result into out, when out is not nil.
// Provider error codes are translated to domain errors.
func (c *client) call(ctx context.Context, out any, method string, params ...any) error {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return translateError(err)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}

func (c *client) ClientVersion(ctx context.Context) (string, error) {
	var version string
	if err := c.call(ctx, &version, clientVersionMethod); err != nil {
		return "", err
	}

	return version, nil
}

// GetSnaps returns the installed snaps keyed by snap id.
func (c *client) GetSnaps(ctx context.Context) (map[string]walletstate.Snap, error) {
	var snaps map[string]walletstate.Snap
	if err := c.call(ctx, &snaps, getSnapsMethod); err != nil {
		return nil, err
	}

	return snaps, nil
}

// EnableSnap installs or reconnects snapID. params are forwarded as the snap's
// install options (e.g. "version").
func (c *client) EnableSnap(ctx context.Context, snapID string, params map[string]any) error {
	if params == nil {
		params = map[string]any{}
	}

	request := map[string]any{
		"wallet_snap": map[string]any{
			snapID: params,
		},
	}

	return c.call(ctx, nil, enableMethod, request)
}

func (c *client) InvokeSnap(ctx context.Context, snapID string, req walletstate.SnapRequest) (json.RawMessage, error) {
	var res json.RawMessage
	if err := c.call(ctx, &res, invokeSnapMethod, snapID, req); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *client) ChainID(ctx context.Context) (string, error) {
	var chainID string
	if err := c.call(ctx, &chainID, chainIDMethod); err != nil {
		return "", err
	}

	return chainID, nil
}

// SwitchChain returns walletstate.ErrChainNotAdded when the wallet does not
// know chainID.
func (c *client) SwitchChain(ctx context.Context, chainID string) error {
	return c.call(ctx, nil, switchChainMethod, map[string]string{"chainId": chainID})
}

func (c *client) AddChain(ctx context.Context, params network.AddChainParams) error {
	return c.call(ctx, nil, addChainMethod, params)
}

// RequestAccounts returns the accounts exposed by the wallet, checksummed.
func (c *client) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := c.call(ctx, &accounts, requestAccountsMethod); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if !common.IsHexAddress(a) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAccount, a)
		}
		out = append(out, common.HexToAddress(a).Hex())
	}

	return out, nil
}

// SendTransaction asks the wallet to sign and broadcast req and returns the
// transaction hash.
func (c *client) SendTransaction(ctx context.Context, req operation.TransactionRequest) (string, error) {
	var hash string
	if err := c.call(ctx, &hash, sendTransactionMethod, req); err != nil {
		return "", err
	}

	return hash, nil
}
