package operation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/pkg/types"
	"github.com/gabapcia/txinsight/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSelector is returned when calldata does not match any known method.
var ErrUnknownSelector = errors.New("unknown method selector")

var (
	//go:embed catalog.yaml
	catalogYAML []byte

	//go:embed abi.json
	abiJSON []byte
)

// Operation names a canned demo transaction.
type Operation string

const (
	Approve    Operation = "approve"
	Transfer   Operation = "transfer"
	Wrap       Operation = "wrap"
	Unwrap     Operation = "unwrap"
	SwapNative Operation = "swap-native"
	SwapUSDC   Operation = "swap-usdc"
)

// Entry describes one canned transaction: which well-known contract it
// targets, the native value it carries and its pre-encoded calldata.
type Entry struct {
	Operation   Operation        `yaml:"operation" validate:"required"`
	Contract    network.Contract `yaml:"contract" validate:"required,oneof=usdc wrapped swapRouter"`
	Value       string           `yaml:"value" validate:"required,hexqty"`
	Data        string           `yaml:"data" validate:"required,hexdata"`
	Description string           `yaml:"description"`

	// Chains restricts the operation to the listed chain ids. Empty means any
	// network that deploys the target contract.
	Chains []types.Hex `yaml:"chains"`

	// Method is the decoded signature of the calldata, e.g. "approve(address,uint256)".
	Method string `yaml:"-"`

	// Calls lists the signatures of the calls batched by a multicall.
	Calls []string `yaml:"-"`
}

// AvailableOn reports whether the entry may be submitted on chainID.
func (e Entry) AvailableOn(chainID types.Hex) bool {
	if len(e.Chains) == 0 {
		return true
	}

	return slices.ContainsFunc(e.Chains, func(c types.Hex) bool {
		return c.Canonical() == chainID.Canonical()
	})
}

func (e Entry) clone() Entry {
	e.Chains = slices.Clone(e.Chains)
	e.Calls = slices.Clone(e.Calls)
	return e
}

type catalogTable struct {
	Operations []Entry `yaml:"operations"`
}

// loadCatalog parses, validates and decodes the embedded catalog once.
var loadCatalog = sync.OnceValues(func() ([]Entry, error) {
	contractABI, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse operation abi: %w", err)
	}

	var t catalogTable
	if err := yaml.Unmarshal(catalogYAML, &t); err != nil {
		return nil, fmt.Errorf("decode operation catalog: %w", err)
	}

	for i, e := range t.Operations {
		if err := validator.Validate(e); err != nil {
			return nil, fmt.Errorf("operation %q: %w", e.Operation, err)
		}

		method, calls, err := describe(contractABI, e.Data)
		if err != nil {
			return nil, fmt.Errorf("operation %q: %w", e.Operation, err)
		}

		t.Operations[i].Method = method
		t.Operations[i].Calls = calls
	}

	return t.Operations, nil
})

// describe decodes the method signature of data and, for a multicall, the
// signatures of the batched calls.
func describe(contractABI abi.ABI, data string) (string, []string, error) {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return "", nil, err
	}

	method, err := methodOf(contractABI, raw)
	if err != nil {
		return "", nil, err
	}

	if method.Name != "multicall" {
		return method.Sig, nil, nil
	}

	args, err := method.Inputs.Unpack(raw[4:])
	if err != nil {
		return "", nil, fmt.Errorf("unpack %s: %w", method.Sig, err)
	}

	inner, ok := args[1].([][]byte)
	if !ok {
		return "", nil, fmt.Errorf("unpack %s: unexpected call list %T", method.Sig, args[1])
	}

	calls := make([]string, 0, len(inner))
	for _, call := range inner {
		m, err := methodOf(contractABI, call)
		if err != nil {
			return "", nil, err
		}
		calls = append(calls, m.Sig)
	}

	return method.Sig, calls, nil
}

func methodOf(contractABI abi.ABI, data []byte) (*abi.Method, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: calldata too short", ErrUnknownSelector)
	}

	method, err := contractABI.MethodById(data[:4])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSelector, hexutil.Encode(data[:4]))
	}

	return method, nil
}

// Catalog returns every canned operation in table order, with its decoded
// method signature.
func Catalog() ([]Entry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}
	return out, nil
}

// Lookup returns the catalog entry for op.
func Lookup(op Operation) (Entry, bool, error) {
	entries, err := loadCatalog()
	if err != nil {
		return Entry{}, false, err
	}

	for _, e := range entries {
		if e.Operation == op {
			return e.clone(), true, nil
		}
	}

	return Entry{}, false, nil
}
