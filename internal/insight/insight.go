package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetType classifies the asset moved by an AssetChange.
type AssetType string

const (
	AssetTypeNative     AssetType = "NATIVE"
	AssetTypeERC20      AssetType = "ERC20"
	AssetTypeERC721     AssetType = "ERC721"
	AssetTypeERC1155    AssetType = "ERC1155"
	AssetTypeSpecialNFT AssetType = "SPECIAL_NFT"
)

// ChangeType tells whether an AssetChange is an allowance or a balance movement.
type ChangeType string

const (
	ChangeTypeApprove  ChangeType = "APPROVE"
	ChangeTypeTransfer ChangeType = "TRANSFER"
)

// AssetChange is one simulated balance movement or approval, as reported by
// the simulation service. It is never built or validated locally.
type AssetChange struct {
	AssetType       AssetType  `json:"assetType"`
	ChangeType      ChangeType `json:"changeType"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	RawAmount       string     `json:"rawAmount"`
	Amount          string     `json:"amount"`
	Name            string     `json:"name,omitempty"`
	Symbol          string     `json:"symbol"`
	Decimals        int32      `json:"decimals"`
	ContractAddress string     `json:"contractAddress,omitempty"`
	Logo            string     `json:"logo,omitempty"`
	TokenID         string     `json:"tokenId,omitempty"`
}

// DisplayAmount returns the human-readable amount of the change. The
// service-provided Amount wins; otherwise it is derived from RawAmount and
// Decimals. Unparseable raw amounts are returned as-is.
func (c AssetChange) DisplayAmount() string {
	if c.Amount != "" {
		return c.Amount
	}

	if c.RawAmount == "" {
		return ""
	}

	raw, err := decimal.NewFromString(c.RawAmount)
	if err != nil {
		return c.RawAmount
	}

	return raw.Shift(-c.Decimals).String()
}

// Label renders the change as "<amount> <symbol>".
func (c AssetChange) Label() string {
	return strings.TrimSpace(c.DisplayAmount() + " " + c.Symbol)
}

// Transaction is a pending blockchain call awaiting the user's confirmation.
// Every field is an opaque hex string.
//
// HasData reports whether the transaction carried a string `data` field;
// transactions without one cannot be analyzed.
type Transaction struct {
	From    string
	To      string
	Value   string
	Data    string
	HasData bool
}

// NewTransaction builds a Transaction carrying calldata.
func NewTransaction(from, to, value, data string) Transaction {
	return Transaction{
		From:    from,
		To:      to,
		Value:   value,
		Data:    data,
		HasData: true,
	}
}

// jsonString decodes raw as a JSON string, reporting false for any other JSON type.
func jsonString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// UnmarshalJSON decodes a transaction object leniently: fields that are
// missing or not strings are left empty, and anything other than an object
// decodes into an empty Transaction. Shape problems are reported later as an
// "unknown transaction" insight rather than a decoding failure.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	*t = Transaction{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	t.From, _ = jsonString(fields["from"])
	t.To, _ = jsonString(fields["to"])
	t.Value, _ = jsonString(fields["value"])
	t.Data, t.HasData = jsonString(fields["data"])
	return nil
}

// MarshalJSON encodes the transaction, omitting `data` when it is absent.
func (t Transaction) MarshalJSON() ([]byte, error) {
	out := map[string]string{
		"from":  t.From,
		"to":    t.To,
		"value": t.Value,
	}
	if t.HasData {
		out["data"] = t.Data
	}
	return json.Marshal(out)
}

// SimulationResult is the payload returned by the simulation service: the
// list of asset changes and, when the simulated call failed, an error string.
type SimulationResult struct {
	Changes []AssetChange `json:"changes"`
	Error   string        `json:"error,omitempty"`
}

// Simulator simulates a transaction on one network and reports its asset changes.
type Simulator interface {
	SimulateAssetChanges(ctx context.Context, tx Transaction) (SimulationResult, error)
}
