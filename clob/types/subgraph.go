package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// GQLPosition is a position row from the positions subgraph. The raw payload
// nests token/condition data under "asset" and reports the balance in 6-decimal
// base units; both are flattened here.
type GQLPosition struct {
	User                 EthAddress
	TokenID              string
	ComplementaryTokenID string
	ConditionID          Keccak256
	OutcomeIndex         int
	Balance              decimal.Decimal // shares, scaled down from base units
}

type gqlPositionRaw struct {
	User    EthAddress `json:"user"`
	Balance string     `json:"balance"`
	Asset   struct {
		ID           string      `json:"id"`
		Complement   string      `json:"complement"`
		OutcomeIndex json.Number `json:"outcomeIndex"`
		Condition    struct {
			ID Keccak256 `json:"id"`
		} `json:"condition"`
	} `json:"asset"`
}

func (p *GQLPosition) UnmarshalJSON(data []byte) error {
	var raw gqlPositionRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	balance, err := decimal.NewFromString(raw.Balance)
	if err != nil {
		return err
	}

	outcomeIndex := 0
	if raw.Asset.OutcomeIndex != "" {
		n, err := raw.Asset.OutcomeIndex.Int64()
		if err != nil {
			return err
		}
		outcomeIndex = int(n)
	}

	p.User = raw.User
	p.TokenID = raw.Asset.ID
	p.ComplementaryTokenID = raw.Asset.Complement
	p.ConditionID = raw.Asset.Condition.ID
	p.OutcomeIndex = outcomeIndex
	p.Balance = balance.Shift(-6)
	return nil
}
