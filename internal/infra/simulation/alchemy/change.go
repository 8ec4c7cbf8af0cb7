package alchemy

import (
	"bytes"
	"encoding/json"

	"github.com/gabapcia/txinsight/internal/insight"
)

// AssetChangeResponse is one entry of the `changes` list. Alchemy documents the
// fields in camelCase; older payloads use snake_case, so both are accepted.
type AssetChangeResponse struct {
	AssetType       string `json:"assetType"`
	ChangeType      string `json:"changeType"`
	From            string `json:"from"`
	To              string `json:"to"`
	RawAmount       string `json:"rawAmount"`
	Amount          string `json:"amount"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Decimals        int32  `json:"decimals"`
	ContractAddress string `json:"contractAddress"`
	Logo            string `json:"logo"`
	TokenID         string `json:"tokenId"`

	AssetTypeSnake       string `json:"asset_type"`
	ChangeTypeSnake      string `json:"change_type"`
	RawAmountSnake       string `json:"raw_amount"`
	ContractAddressSnake string `json:"contract_address"`
	TokenIDSnake         string `json:"token_id"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// toAssetChange converts the response entry to an insight.AssetChange.
func (r AssetChangeResponse) toAssetChange() insight.AssetChange {
	return insight.AssetChange{
		AssetType:       insight.AssetType(firstNonEmpty(r.AssetType, r.AssetTypeSnake)),
		ChangeType:      insight.ChangeType(firstNonEmpty(r.ChangeType, r.ChangeTypeSnake)),
		From:            r.From,
		To:              r.To,
		RawAmount:       firstNonEmpty(r.RawAmount, r.RawAmountSnake),
		Amount:          r.Amount,
		Name:            r.Name,
		Symbol:          r.Symbol,
		Decimals:        r.Decimals,
		ContractAddress: firstNonEmpty(r.ContractAddress, r.ContractAddressSnake),
		Logo:            r.Logo,
		TokenID:         firstNonEmpty(r.TokenID, r.TokenIDSnake),
	}
}

// SimulationError is the optional `error` field of a simulation result. It is
// either a plain string or an object carrying a `message`.
type SimulationError string

// UnmarshalJSON accepts null, a string or an object with a message.
func (e *SimulationError) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*e = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = SimulationError(s)
		return nil
	case data[0] == '{':
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Message == "" {
			*e = SimulationError(data)
			return nil
		}
		*e = SimulationError(obj.Message)
		return nil
	default:
		*e = SimulationError(data)
		return nil
	}
}
