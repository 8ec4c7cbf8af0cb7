// Package operation submits the site's canned demo transactions (approve,
// transfer, wrap, unwrap and swaps) through the connected wallet.
//
// Each operation pairs a well-known contract of the active network with a
// pre-encoded calldata blob. Nothing is re-encoded, retried or tracked after
// submission; the wallet owns the transaction lifecycle.
package operation

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/pkg/types"
	"github.com/gabapcia/txinsight/internal/pkg/validator"
)

var (
	// ErrUnsupportedNetwork is returned when the wallet is on a chain missing from the network table.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrUnknownOperation is returned for operations missing from the catalog.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrOperationUnavailable is returned when the operation is not offered on the active network.
	ErrOperationUnavailable = errors.New("operation unavailable on this network")

	// ErrNoAccounts is returned when the wallet exposes no account.
	ErrNoAccounts = errors.New("wallet returned no accounts")
)

// TransactionRequest is the `eth_sendTransaction` parameter object.
type TransactionRequest struct {
	From  string `json:"from" validate:"required,eth_addr"`
	To    string `json:"to" validate:"required,eth_addr"`
	Value string `json:"value" validate:"required,hexqty"`
	Data  string `json:"data" validate:"required,hexdata"`
}

// Wallet is the subset of the wallet provider used to submit operations.
type Wallet interface {
	ChainID(ctx context.Context) (string, error)
	RequestAccounts(ctx context.Context) ([]string, error)
	SendTransaction(ctx context.Context, req TransactionRequest) (string, error)
}

// Submission describes a transaction handed to the wallet.
type Submission struct {
	Operation Operation          `json:"operation"`
	ChainID   types.Hex          `json:"chainId"`
	Network   string             `json:"network"`
	Request   TransactionRequest `json:"request"`
	Hash      string             `json:"hash"`
}

// Service dispatches canned operations.
type Service interface {
	Dispatch(ctx context.Context, op Operation) (Submission, error)
}

type service struct {
	wallet   Wallet
	networks *network.Registry
}

var _ Service = (*service)(nil)

// New creates an operation Service submitting through wallet and resolving
// contract addresses from networks.
func New(wallet Wallet, networks *network.Registry) *service {
	return &service{
		wallet:   wallet,
		networks: networks,
	}
}

// Dispatch resolves op against the wallet's active network and submits it.
// It returns the transaction hash reported by the wallet.
func (s *service) Dispatch(ctx context.Context, op Operation) (Submission, error) {
	entry, ok, err := Lookup(op)
	if err != nil {
		return Submission{}, err
	}
	if !ok {
		return Submission{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	chainID, err := s.wallet.ChainID(ctx)
	if err != nil {
		return Submission{}, fmt.Errorf("read chain id: %w", err)
	}

	n, ok := s.networks.Lookup(chainID)
	if !ok {
		return Submission{}, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, chainID)
	}

	to := n.Contract(entry.Contract)
	if !entry.AvailableOn(n.ChainID) || to == "" {
		return Submission{}, fmt.Errorf("%w: %s on %s", ErrOperationUnavailable, op, n.Name)
	}

	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		return Submission{}, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return Submission{}, ErrNoAccounts
	}

	req := TransactionRequest{
		From:  accounts[0],
		To:    to,
		Value: entry.Value,
		Data:  entry.Data,
	}
	if err := validator.Validate(req); err != nil {
		return Submission{}, err
	}

	hash, err := s.wallet.SendTransaction(ctx, req)
	if err != nil {
		return Submission{}, fmt.Errorf("send transaction: %w", err)
	}

	logger.Info(ctx, "operation submitted",
		"operation", op,
		"chain.id", n.ChainID,
		"tx.to", to,
		"tx.hash", hash,
	)

	return Submission{
		Operation: op,
		ChainID:   n.ChainID,
		Network:   n.Name,
		Request:   req,
		Hash:      hash,
	}, nil
}
