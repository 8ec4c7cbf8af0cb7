// Package snaphost implements the snap's host wallet capabilities over the
// wallet's JSON-RPC endpoint.
package snaphost

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txinsight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txinsight/internal/snap"
)

const confirmMethod = "snap_confirm"

type client struct {
	conn jsonrpc.Client
}

var _ snap.Dialog = (*client)(nil)

// NewClient creates a host dialog that sends requests through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// Confirm implements snap.Dialog.
func (c *client) Confirm(ctx context.Context, params snap.ConfirmParams) (bool, error) {
	data, err := c.conn.Fetch(ctx, confirmMethod, params)
	if err != nil {
		return false, err
	}

	var accepted bool
	if err := json.Unmarshal(data, &accepted); err != nil {
		return false, fmt.Errorf("decode confirmation: %w", err)
	}

	return accepted, nil
}
