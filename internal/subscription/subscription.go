package subscription

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	subscriptionDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/subscription"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = aggregate.CycleMonthly
	CycleYearly  BillingCycle = aggregate.CycleYearly
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

type Category string

const (
	CategoryEntertainment Category = "entertainment"
	CategoryProductivity  Category = "productivity"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

var (
	cycles     = []string{string(CycleMonthly), string(CycleYearly)}
	statuses   = []string{string(StatusActive), string(StatusPaused), string(StatusCancelled)}
	categories = []string{string(CategoryEntertainment), string(CategoryProductivity), string(CategoryEducation), string(CategoryOther)}
)

func oneOf(kind, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("unknown subscription %s %q", kind, value)
}

type Subscription struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"-"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	BillingCycle BillingCycle    `json:"billing_cycle"`
	NextBilling  time.Time       `json:"next_billing"`
	Status       Status          `json:"status"`
	Autopay      bool            `json:"autopay"`
	Category     Category        `json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (s *Subscription) Active() bool { return s.Status == StatusActive }

// MonthlyCost is the amount spread per month.
func (s *Subscription) MonthlyCost() decimal.Decimal {
	return aggregate.MonthlyEquivalent(s.Amount, string(s.BillingCycle))
}

func ToDataModel(s *Subscription) *subscriptionDatamodel.Subscription {
	dm := &subscriptionDatamodel.Subscription{
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Amount:       s.Amount,
		BillingCycle: string(s.BillingCycle),
		NextBilling:  s.NextBilling,
		Status:       string(s.Status),
		Autopay:      s.Autopay,
		Category:     string(s.Category),
		CreatedAt:    s.CreatedAt,
	}
	dm.ID = s.ID
	return dm
}

func FromDataModel(dm *subscriptionDatamodel.Subscription) (*Subscription, error) {
	if err := oneOf("billing cycle", dm.BillingCycle, cycles); err != nil {
		return nil, err
	}
	if err := oneOf("status", dm.Status, statuses); err != nil {
		return nil, err
	}
	if err := oneOf("category", dm.Category, categories); err != nil {
		return nil, err
	}
	return &Subscription{
		ID:           dm.ID,
		OwnerID:      dm.OwnerID,
		Name:         dm.Name,
		Amount:       dm.Amount,
		BillingCycle: BillingCycle(dm.BillingCycle),
		NextBilling:  aggregate.CalendarDay(dm.NextBilling),
		Status:       Status(dm.Status),
		Autopay:      dm.Autopay,
		Category:     Category(dm.Category),
		CreatedAt:    dm.CreatedAt,
	}, nil
}
