package budget

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type BudgetCategory struct {
	datamodel.Record
	OwnerID   string          `gorm:"column:owner_id;index;not null"`
	Name      string          `gorm:"column:name;not null"`
	Allocated decimal.Decimal `gorm:"column:allocated;type:decimal(12,2);not null"`
	Spent     decimal.Decimal `gorm:"column:spent;type:decimal(12,2);not null"`
	Icon      string          `gorm:"column:icon"`
	Color     string          `gorm:"column:color"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (BudgetCategory) TableName() string {
	return "budget_categories"
}
