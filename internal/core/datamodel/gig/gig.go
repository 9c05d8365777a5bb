package gig

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Gig struct {
	datamodel.Record
	Title        string          `gorm:"column:title;not null"`
	Company      string          `gorm:"column:company;not null"`
	HourlyRate   decimal.Decimal `gorm:"column:hourly_rate;type:decimal(12,2);not null"`
	Type         string          `gorm:"column:type;not null"`
	Location     string          `gorm:"column:location"`
	Requirements []string        `gorm:"column:requirements;serializer:json"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Gig) TableName() string {
	return "gigs"
}
