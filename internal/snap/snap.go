// Package snap implements the snap's entry points: the custom JSON-RPC methods
// a site invokes through `wallet_invokeSnap`, and the transaction insight hook
// the wallet calls before a transaction is confirmed.
package snap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txinsight/internal/insight"
	"github.com/gabapcia/txinsight/internal/pkg/logger"
)

const helloMethod = "hello"

// ErrMethodNotFound is returned for any request method the snap does not implement.
//
//nolint:staticcheck // the message is part of the snap's public contract
var ErrMethodNotFound = errors.New("Method not found.")

// Request is a JSON-RPC request forwarded to the snap by the wallet.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ConfirmParams is the payload of a `snap_confirm` dialog.
type ConfirmParams struct {
	Prompt          string `json:"prompt"`
	Description     string `json:"description,omitempty"`
	TextAreaContent string `json:"textAreaContent,omitempty"`
}

// Dialog is the host wallet's confirmation dialog.
type Dialog interface {
	// Confirm shows the dialog and reports whether the user accepted it.
	Confirm(ctx context.Context, params ConfirmParams) (bool, error)
}

// TransactionInsights is the value returned to the wallet by OnTransaction.
type TransactionInsights struct {
	Insights insight.Result `json:"insights"`
}

// Handler is the snap's entry-point surface.
type Handler interface {
	OnRpcRequest(ctx context.Context, origin string, req Request) (any, error)
	OnTransaction(ctx context.Context, tx insight.Transaction, chainID string) TransactionInsights
}

type handler struct {
	dialog   Dialog
	insights insight.Service
}

var _ Handler = (*handler)(nil)

// New creates the snap Handler.
func New(dialog Dialog, insights insight.Service) *handler {
	return &handler{
		dialog:   dialog,
		insights: insights,
	}
}

// greeting is the prompt shown for a hello request.
func greeting(origin string) string {
	return fmt.Sprintf("Hello, %s!", origin)
}

// OnRpcRequest handles a request sent by origin. Only "hello" is supported; it
// shows a confirmation dialog and returns the dialog result.
func (h *handler) OnRpcRequest(ctx context.Context, origin string, req Request) (any, error) {
	switch req.Method {
	case helloMethod:
		accepted, err := h.dialog.Confirm(ctx, ConfirmParams{
			Prompt:          greeting(origin),
			Description:     "This custom confirmation is just for display purposes.",
			TextAreaContent: "But you can edit the snap source code to make it do something, if you want to!",
		})
		if err != nil {
			return nil, fmt.Errorf("confirm: %w", err)
		}

		return accepted, nil
	default:
		logger.Debug(ctx, "unsupported snap method", "origin", origin, "method", req.Method)
		return nil, ErrMethodNotFound
	}
}

// OnTransaction returns the insights for a transaction about to be signed on chainID.
func (h *handler) OnTransaction(ctx context.Context, tx insight.Transaction, chainID string) TransactionInsights {
	logger.Debug(ctx, "transaction received", "chain.id", chainID, "tx.from", tx.From, "tx.to", tx.To)

	return TransactionInsights{
		Insights: h.insights.GetInsights(ctx, tx, chainID),
	}
}
