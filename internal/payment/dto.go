package payment

import "github.com/shopspring/decimal"

type CreateContactDTO struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	UpiID      string `json:"upi_id"`
	IsFrequent bool   `json:"is_frequent"`
}

type SendMoneyDTO struct {
	ContactID   string          `json:"contact_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type TransactionLine struct {
	*Transaction
	ContactName string `json:"contact_name"`
}

type PaymentsView struct {
	WalletBalance    decimal.Decimal   `json:"wallet_balance"`
	Search           string            `json:"search"`
	Contacts         []*Contact        `json:"contacts"`
	FrequentContacts []*Contact        `json:"frequent_contacts"`
	History          []TransactionLine `json:"history"`
	Stale            bool              `json:"stale"`
}
