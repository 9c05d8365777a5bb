package splitbill

import "github.com/shopspring/decimal"

// CreateBillDTO splits a bill. PaidBy defaults to the owner.
type CreateBillDTO struct {
	Title        string          `json:"title"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Participants []string        `json:"participants"`
	PaidBy       string          `json:"paid_by"`
	Date         string          `json:"date"`
}

type BillLine struct {
	*Bill
	Share    decimal.Decimal `json:"share"`
	PaidByMe bool            `json:"paid_by_me"`
	OwedToMe decimal.Decimal `json:"owed_to_me"`
	OwedByMe decimal.Decimal `json:"owed_by_me"`
}

type BillsView struct {
	Bills         []BillLine      `json:"bills"`
	PendingCount  int             `json:"pending_count"`
	TotalOwedToMe decimal.Decimal `json:"total_owed_to_me"`
	TotalOwedByMe decimal.Decimal `json:"total_owed_by_me"`
	Stale         bool            `json:"stale"`
}
