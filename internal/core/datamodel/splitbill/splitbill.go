package splitbill

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type SplitBill struct {
	datamodel.Record
	OwnerID      string          `gorm:"column:owner_id;index;not null"`
	Title        string          `gorm:"column:title;not null"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null"`
	Participants []string        `gorm:"column:participants;serializer:json"`
	PaidBy       string          `gorm:"column:paid_by;not null"`
	Date         time.Time       `gorm:"column:date;type:date;not null"`
	Settled      bool            `gorm:"column:settled;not null;default:false"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (SplitBill) TableName() string {
	return "split_bills"
}
