package expense

import "github.com/shopspring/decimal"

type CreateExpenseDTO struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

type ListView struct {
	Filter   string          `json:"filter"`
	Expenses []*Expense      `json:"expenses"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Stale    bool            `json:"stale"`
}
