package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	expenseDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/expense"
)

type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryStudy         Category = "study"
	CategoryOther         Category = "other"
)

// Categories is the fixed display order used by every breakdown.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryStudy,
	CategoryOther,
}

func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category %q", s)
}

// Expense is immutable once recorded.
type Expense struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"-"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

func AmountOf(e *Expense) decimal.Decimal { return e.Amount }

func CategoryOf(e *Expense) Category { return e.Category }

func DateOf(e *Expense) int64 { return aggregate.DateKey(e.Date) }

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	dm := &expenseDatamodel.Expense{
		OwnerID:   e.OwnerID,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  string(e.Category),
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
	dm.ID = e.ID
	return dm
}

func FromDataModel(dm *expenseDatamodel.Expense) (*Expense, error) {
	category, err := ParseCategory(dm.Category)
	if err != nil {
		return nil, err
	}
	return &Expense{
		ID:        dm.ID,
		OwnerID:   dm.OwnerID,
		Title:     dm.Title,
		Amount:    dm.Amount,
		Category:  category,
		Date:      aggregate.CalendarDay(dm.Date),
		CreatedAt: dm.CreatedAt,
	}, nil
}
