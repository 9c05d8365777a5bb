package expense

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Expense struct {
	datamodel.Record
	OwnerID   string          `gorm:"column:owner_id;index;not null"`
	Title     string          `gorm:"column:title;not null"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Category  string          `gorm:"column:category;not null"`
	Date      time.Time       `gorm:"column:date;type:date;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Expense) TableName() string {
	return "expenses"
}
