// Package network is the static chain/network selector. It maps a hex chain id
// to the network's display name, native currency and well-known contract
// addresses (stablecoin, wrapped native token, swap router).
//
// The table is configuration data embedded from networks.yaml. A Registry is
// immutable once loaded; every accessor returns copies.
package network

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/txinsight/internal/pkg/types"
	"github.com/gabapcia/txinsight/internal/pkg/validator"

	"gopkg.in/yaml.v3"
)

// Chain ids of the two test networks the site toggles between.
const (
	EthereumGoerli types.Hex = "0x5"
	PolygonMumbai  types.Hex = "0x13881"
)

var (
	// ErrDuplicateNetwork is returned when two table entries share a chain id.
	ErrDuplicateNetwork = errors.New("duplicate network")

	// ErrChainIDMismatch is returned when an entry's hex chain id and numeric id disagree.
	ErrChainIDMismatch = errors.New("chain id does not match network number")
)

//go:embed networks.yaml
var networksYAML []byte

// Contract names a well-known contract kind deployed on a network.
type Contract string

const (
	ContractUSDC       Contract = "usdc"
	ContractWrapped    Contract = "wrapped"
	ContractSwapRouter Contract = "swapRouter"
)

// Currency describes a network's native currency.
type Currency struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Symbol   string `yaml:"symbol" json:"symbol" validate:"required"`
	Decimals uint8  `yaml:"decimals" json:"decimals"`
}

// Network is one entry of the static network table.
type Network struct {
	ChainID           types.Hex `yaml:"chainId" validate:"required"`
	Number            int64     `yaml:"number" validate:"gt=0"`
	Name              string    `yaml:"name" validate:"required"`
	NativeCurrency    Currency  `yaml:"nativeCurrency"`
	USDC              string    `yaml:"usdc" validate:"omitempty,eth_addr"`
	Wrapped           string    `yaml:"wrapped" validate:"omitempty,eth_addr"`
	SwapRouter        string    `yaml:"swapRouter" validate:"omitempty,eth_addr"`
	RPCURLs           []string  `yaml:"rpcUrls" validate:"dive,url"`
	BlockExplorerURLs []string  `yaml:"blockExplorerUrls" validate:"dive,url"`
	SimulationURL     string    `yaml:"simulationUrl" validate:"omitempty,url"`
}

// Contract returns the address of the given contract kind on n, or an empty
// string when the network has no such deployment.
func (n Network) Contract(c Contract) string {
	switch c {
	case ContractUSDC:
		return n.USDC
	case ContractWrapped:
		return n.Wrapped
	case ContractSwapRouter:
		return n.SwapRouter
	default:
		return ""
	}
}

// AddChainParams is the EIP-3085 `wallet_addEthereumChain` parameter object.
type AddChainParams struct {
	ChainID           string   `json:"chainId"`
	ChainName         string   `json:"chainName"`
	NativeCurrency    Currency `json:"nativeCurrency"`
	RPCURLs           []string `json:"rpcUrls"`
	BlockExplorerURLs []string `json:"blockExplorerUrls,omitempty"`
}

// AddChainParams builds the parameters a wallet needs to add n.
func (n Network) AddChainParams() AddChainParams {
	return AddChainParams{
		ChainID:           string(n.ChainID),
		ChainName:         n.Name,
		NativeCurrency:    n.NativeCurrency,
		RPCURLs:           slices.Clone(n.RPCURLs),
		BlockExplorerURLs: slices.Clone(n.BlockExplorerURLs),
	}
}

// clone returns a deep copy of n.
func (n Network) clone() Network {
	n.RPCURLs = slices.Clone(n.RPCURLs)
	n.BlockExplorerURLs = slices.Clone(n.BlockExplorerURLs)
	return n
}

// Registry is an immutable chain id -> Network lookup table.
type Registry struct {
	byChainID map[types.Hex]Network
	order     []types.Hex
}

// table is the YAML document layout.
type table struct {
	Networks []Network `yaml:"networks"`
}

// Load parses and validates a YAML network table.
func Load(data []byte) (*Registry, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode network table: %w", err)
	}

	r := &Registry{byChainID: make(map[types.Hex]Network, len(t.Networks))}
	for _, n := range t.Networks {
		if err := validator.Validate(n); err != nil {
			return nil, fmt.Errorf("network %q: %w", n.Name, err)
		}

		if n.ChainID.Int() != n.Number {
			return nil, fmt.Errorf("%w: %s is not %d", ErrChainIDMismatch, n.ChainID, n.Number)
		}

		key := n.ChainID.Canonical()
		if _, ok := r.byChainID[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNetwork, key)
		}

		n.ChainID = key
		r.byChainID[key] = n
		r.order = append(r.order, key)
	}

	return r, nil
}

// loadDefault parses the embedded table exactly once.
var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(networksYAML)
})

// Default returns the registry built from the embedded networks.yaml.
func Default() (*Registry, error) {
	return loadDefault()
}

// Lookup returns the network for chainID. The comparison is case-insensitive.
// Unknown chains report false and must be checked by the caller.
func (r *Registry) Lookup(chainID string) (Network, bool) {
	n, ok := r.byChainID[types.Hex(strings.ToLower(strings.TrimSpace(chainID)))]
	if !ok {
		return Network{}, false
	}

	return n.clone(), true
}

// All returns every network in table order.
func (r *Registry) All() []Network {
	out := make([]Network, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byChainID[id].clone())
	}
	return out
}
