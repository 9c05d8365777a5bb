package investment

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	investmentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/investment"
)

type Type string

const (
	TypeGold       Type = "gold"
	TypeStocks     Type = "stocks"
	TypeMutualFund Type = "mutual_fund"
	TypeCrypto     Type = "crypto"
)

var Types = []Type{TypeGold, TypeStocks, TypeMutualFund, TypeCrypto}

func TypeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return names
}

func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown investment type %q", s)
}

type Investment struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"-"`
	Type         Type            `json:"type"`
	Symbol       string          `json:"symbol"`
	Amount       decimal.Decimal `json:"amount"`
	CurrentValue decimal.Decimal `json:"current_value"`
	CreatedAt    time.Time       `json:"created_at"`
}

func AmountOf(i *Investment) decimal.Decimal { return i.Amount }

func CurrentValueOf(i *Investment) decimal.Decimal { return i.CurrentValue }

func ToDataModel(i *Investment) *investmentDatamodel.Investment {
	dm := &investmentDatamodel.Investment{
		OwnerID:      i.OwnerID,
		Type:         string(i.Type),
		Symbol:       i.Symbol,
		Amount:       i.Amount,
		CurrentValue: i.CurrentValue,
		CreatedAt:    i.CreatedAt,
	}
	dm.ID = i.ID
	return dm
}

func FromDataModel(dm *investmentDatamodel.Investment) (*Investment, error) {
	t, err := ParseType(dm.Type)
	if err != nil {
		return nil, err
	}
	return &Investment{
		ID:           dm.ID,
		OwnerID:      dm.OwnerID,
		Type:         t,
		Symbol:       dm.Symbol,
		Amount:       dm.Amount,
		CurrentValue: dm.CurrentValue,
		CreatedAt:    dm.CreatedAt,
	}, nil
}
