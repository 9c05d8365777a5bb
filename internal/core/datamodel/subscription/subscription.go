package subscription

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Subscription struct {
	datamodel.Record
	OwnerID      string          `gorm:"column:owner_id;index;not null"`
	Name         string          `gorm:"column:name;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	BillingCycle string          `gorm:"column:billing_cycle;not null"`
	NextBilling  time.Time       `gorm:"column:next_billing;type:date;not null"`
	Status       string          `gorm:"column:status;not null;default:active"`
	Autopay      bool            `gorm:"column:autopay;not null;default:false"`
	Category     string          `gorm:"column:category;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
