package investment

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Investment struct {
	datamodel.Record
	OwnerID      string          `gorm:"column:owner_id;index;not null"`
	Type         string          `gorm:"column:type;not null"`
	Symbol       string          `gorm:"column:symbol"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	CurrentValue decimal.Decimal `gorm:"column:current_value;type:decimal(12,2);not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Investment) TableName() string {
	return "investments"
}
