package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

var Statuses = []Status{StatusActive, StatusPaid, StatusOverdue}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown loan status %q", s)
}

func StatusNames() []string {
	names := make([]string, len(Statuses))
	for i, st := range Statuses {
		names[i] = string(st)
	}
	return names
}

type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionBorrowed Direction = "borrowed"
	DirectionLent     Direction = "lent"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionBorrowed, DirectionLent:
		return d, nil
	}
	return "", fmt.Errorf("unknown loan direction %q", s)
}

// Loan is a peer loan. Borrower and lender are display names as they were
// when the loan was recorded; Direction says which side the owner is on.
type Loan struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"-"`
	Amount       decimal.Decimal `json:"amount"`
	Borrower     string          `json:"borrower"`
	Lender       string          `json:"lender"`
	Direction    Direction       `json:"direction"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	DueDate      time.Time       `json:"due_date"`
	Status       Status          `json:"status"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EffectiveStatus reports an active loan whose due date has passed as
// overdue, whatever is stored.
func (l *Loan) EffectiveStatus(today time.Time) Status {
	if l.Status == StatusActive && aggregate.DaysUntil(l.DueDate, today) < 0 {
		return StatusOverdue
	}
	return l.Status
}

func AmountOf(l *Loan) decimal.Decimal { return l.Amount }

func (l *Loan) IsBorrowed() bool { return l.Direction == DirectionBorrowed }

func (l *Loan) IsLent() bool { return l.Direction == DirectionLent }

func ToDataModel(l *Loan) *loanDatamodel.Loan {
	dm := &loanDatamodel.Loan{
		OwnerID:      l.OwnerID,
		Amount:       l.Amount,
		Borrower:     l.Borrower,
		Lender:       l.Lender,
		Direction:    string(l.Direction),
		InterestRate: l.InterestRate,
		DueDate:      l.DueDate,
		Status:       string(l.Status),
		Description:  l.Description,
		CreatedAt:    l.CreatedAt,
	}
	dm.ID = l.ID
	return dm
}

func FromDataModel(dm *loanDatamodel.Loan) (*Loan, error) {
	status, err := ParseStatus(dm.Status)
	if err != nil {
		return nil, err
	}
	direction, err := ParseDirection(dm.Direction)
	if err != nil {
		return nil, err
	}
	return &Loan{
		ID:           dm.ID,
		OwnerID:      dm.OwnerID,
		Amount:       dm.Amount,
		Borrower:     dm.Borrower,
		Lender:       dm.Lender,
		Direction:    direction,
		InterestRate: dm.InterestRate,
		DueDate:      aggregate.CalendarDay(dm.DueDate),
		Status:       status,
		Description:  dm.Description,
		CreatedAt:    dm.CreatedAt,
	}, nil
}
