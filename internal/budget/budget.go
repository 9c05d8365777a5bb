package budget

import (
	"time"

	"github.com/shopspring/decimal"

	budgetDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/budget"
)

type Category struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"-"`
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (c *Category) OverBudget() bool {
	return c.Spent.GreaterThan(c.Allocated)
}

type defaultCategory struct {
	name      string
	allocated int64
	icon      string
	color     string
}

// Every new owner starts with these categories, in this order.
var defaultCategories = []defaultCategory{
	{"Canteen", 2000, "🍽️", "bg-red-500"},
	{"Outings", 1500, "🎉", "bg-purple-500"},
	{"Transport", 800, "🚌", "bg-blue-500"},
	{"Study Materials", 1000, "📚", "bg-green-500"},
	{"Shopping", 1200, "🛍️", "bg-yellow-500"},
	{"Entertainment", 800, "🎬", "bg-pink-500"},
}

func DefaultCategories(ownerID string) []*Category {
	out := make([]*Category, len(defaultCategories))
	for i, d := range defaultCategories {
		out[i] = &Category{
			OwnerID:   ownerID,
			Name:      d.name,
			Allocated: decimal.NewFromInt(d.allocated),
			Spent:     decimal.Zero,
			Icon:      d.icon,
			Color:     d.color,
		}
	}
	return out
}

func ToDataModel(c *Category) *budgetDatamodel.BudgetCategory {
	dm := &budgetDatamodel.BudgetCategory{
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Allocated: c.Allocated,
		Spent:     c.Spent,
		Icon:      c.Icon,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	dm.ID = c.ID
	return dm
}

func FromDataModel(dm *budgetDatamodel.BudgetCategory) *Category {
	return &Category{
		ID:        dm.ID,
		OwnerID:   dm.OwnerID,
		Name:      dm.Name,
		Allocated: dm.Allocated,
		Spent:     dm.Spent,
		Icon:      dm.Icon,
		Color:     dm.Color,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
}
