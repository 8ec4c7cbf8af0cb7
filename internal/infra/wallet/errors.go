package wallet

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txinsight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txinsight/internal/walletstate"
)

// EIP-1193 provider error codes.
const (
	codeUserRejected  = 4001
	codeChainNotAdded = 4902
)

// ErrInvalidAccount is returned when the wallet exposes a malformed address.
var ErrInvalidAccount = errors.New("invalid account address")

// providerCode returns the EIP-1193 code carried by e. Some wallets wrap the
// provider error in an internal error and keep the original under
// data.originalError.
func providerCode(e *jsonrpc.Error) int {
	var data struct {
		OriginalError struct {
			Code int `json:"code"`
		} `json:"originalError"`
	}
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &data) == nil && data.OriginalError.Code != 0 {
		return data.OriginalError.Code
	}

	return e.Code
}

// translateError maps provider error codes to walletstate sentinels and keeps
// the original error in the chain.
func translateError(err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	switch providerCode(rpcErr) {
	case codeUserRejected:
		return fmt.Errorf("%w: %w", walletstate.ErrUserRejected, err)
	case codeChainNotAdded:
		return fmt.Errorf("%w: %w", walletstate.ErrChainNotAdded, err)
	default:
		return err
	}
}
