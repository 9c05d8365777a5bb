package groupfund

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Contributor struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

type GroupFund struct {
	datamodel.Record
	OwnerID       string          `gorm:"column:owner_id;index;not null"`
	Title         string          `gorm:"column:title;not null"`
	Description   string          `gorm:"column:description"`
	TargetAmount  decimal.Decimal `gorm:"column:target_amount;type:decimal(12,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"column:current_amount;type:decimal(12,2);not null"`
	Contributors  []Contributor   `gorm:"column:contributors;serializer:json"`
	Deadline      time.Time       `gorm:"column:deadline;type:date;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (GroupFund) TableName() string {
	return "group_funds"
}
