package groupfund

import "github.com/shopspring/decimal"

type CreateFundDTO struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     string          `json:"deadline"`
}

type ContributeDTO struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

type FundLine struct {
	*Fund
	Progress         float64         `json:"progress"`
	BarWidth         float64         `json:"bar_width"`
	Remaining        decimal.Decimal `json:"remaining"`
	DaysLeft         int             `json:"days_left"`
	ContributorTotal decimal.Decimal `json:"contributor_total"`
	Reconciled       bool            `json:"reconciled"`
}

type FundsView struct {
	Funds       []FundLine      `json:"funds"`
	TotalSaved  decimal.Decimal `json:"total_saved"`
	TotalTarget decimal.Decimal `json:"total_target"`
	Stale       bool            `json:"stale"`
}
