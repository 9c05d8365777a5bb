package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	paymentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/payment"
)

type TransactionType string

const (
	TypeSent     TransactionType = "sent"
	TypeReceived TransactionType = "received"
)

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

type Contact struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"-"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	UpiID      string    `json:"upi_id"`
	IsFrequent bool      `json:"is_frequent"`
	CreatedAt  time.Time `json:"created_at"`
}

// Matches is a case-insensitive name search, or a substring match on the
// phone number. An empty term matches everyone.
func (c *Contact) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) || strings.Contains(c.Phone, term)
}

type Transaction struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"-"`
	ContactID   string            `json:"contact_id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

func AmountOf(t *Transaction) decimal.Decimal { return t.Amount }

func ContactToDataModel(c *Contact) *paymentDatamodel.Contact {
	dm := &paymentDatamodel.Contact{
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		Phone:      c.Phone,
		UpiID:      c.UpiID,
		IsFrequent: c.IsFrequent,
		CreatedAt:  c.CreatedAt,
	}
	dm.ID = c.ID
	return dm
}

func ContactFromDataModel(dm *paymentDatamodel.Contact) *Contact {
	return &Contact{
		ID:         dm.ID,
		OwnerID:    dm.OwnerID,
		Name:       dm.Name,
		Phone:      dm.Phone,
		UpiID:      dm.UpiID,
		IsFrequent: dm.IsFrequent,
		CreatedAt:  dm.CreatedAt,
	}
}

func TransactionToDataModel(t *Transaction) *paymentDatamodel.Transaction {
	dm := &paymentDatamodel.Transaction{
		OwnerID:     t.OwnerID,
		ContactID:   t.ContactID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
	dm.ID = t.ID
	return dm
}

func TransactionFromDataModel(dm *paymentDatamodel.Transaction) (*Transaction, error) {
	switch TransactionType(dm.Type) {
	case TypeSent, TypeReceived:
	default:
		return nil, fmt.Errorf("unknown transaction type %q", dm.Type)
	}
	switch TransactionStatus(dm.Status) {
	case StatusCompleted, StatusPending, StatusFailed:
	default:
		return nil, fmt.Errorf("unknown transaction status %q", dm.Status)
	}
	return &Transaction{
		ID:          dm.ID,
		OwnerID:     dm.OwnerID,
		ContactID:   dm.ContactID,
		Type:        TransactionType(dm.Type),
		Amount:      dm.Amount,
		Description: dm.Description,
		Date:        dm.Date,
		Status:      TransactionStatus(dm.Status),
		CreatedAt:   dm.CreatedAt,
	}, nil
}
