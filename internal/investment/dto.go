package investment

import "github.com/shopspring/decimal"

// CreateInvestmentDTO records a purchase. CurrentValue defaults to Amount.
type CreateInvestmentDTO struct {
	Type         string           `json:"type"`
	Symbol       string           `json:"symbol"`
	Amount       decimal.Decimal  `json:"amount"`
	CurrentValue *decimal.Decimal `json:"current_value,omitempty"`
}

type Holding struct {
	*Investment
	Change        decimal.Decimal `json:"change"`
	ChangePercent float64         `json:"change_percent"`
}

type PortfolioView struct {
	Holdings          []Holding       `json:"holdings"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	TotalCurrentValue decimal.Decimal `json:"total_current_value"`
	GainLoss          decimal.Decimal `json:"gain_loss"`
	GainLossPercent   float64         `json:"gain_loss_percent"`
	Stale             bool            `json:"stale"`
}
