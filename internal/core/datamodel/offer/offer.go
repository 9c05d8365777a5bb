package offer

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
)

type Offer struct {
	datamodel.Record
	Brand      string    `gorm:"column:brand;not null"`
	Title      string    `gorm:"column:title;not null"`
	Discount   string    `gorm:"column:discount;not null"`
	Category   string    `gorm:"column:category;not null"`
	ValidUntil time.Time `gorm:"column:valid_until;type:date;not null"`
	Code       *string   `gorm:"column:code"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Offer) TableName() string {
	return "offers"
}
