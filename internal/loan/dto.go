package loan

import "github.com/shopspring/decimal"

// CreateLoanDTO records a loan from the owner's side: direction says whether
// the owner borrowed from or lent to the counterparty.
type CreateLoanDTO struct {
	Direction    string          `json:"direction"`
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueDate      string          `json:"due_date"`
	Description  string          `json:"description"`
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

type LoanLine struct {
	*Loan
	EffectiveStatus Status `json:"effective_status"`
	DaysToDeadline  int    `json:"days_to_deadline"`
}

type LoansView struct {
	Direction     Direction       `json:"direction"`
	Loans         []LoanLine      `json:"loans"`
	TotalBorrowed decimal.Decimal `json:"total_borrowed"`
	TotalLent     decimal.Decimal `json:"total_lent"`
	ActiveCount   int             `json:"active_count"`
	OverdueCount  int             `json:"overdue_count"`
	Stale         bool            `json:"stale"`
}
