package payment

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Contact struct {
	datamodel.Record
	OwnerID    string    `gorm:"column:owner_id;index;not null"`
	Name       string    `gorm:"column:name;not null"`
	Phone      string    `gorm:"column:phone"`
	UpiID      string    `gorm:"column:upi_id"`
	IsFrequent bool      `gorm:"column:is_frequent;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Contact) TableName() string {
	return "contacts"
}

type Transaction struct {
	datamodel.Record
	OwnerID     string          `gorm:"column:owner_id;index;not null"`
	ContactID   string          `gorm:"column:contact_id;not null"`
	Type        string          `gorm:"column:type;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Description string          `gorm:"column:description"`
	Date        time.Time       `gorm:"column:date;not null"`
	Status      string          `gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
