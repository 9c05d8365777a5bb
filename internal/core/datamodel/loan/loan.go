package loan

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

type Loan struct {
	datamodel.Record
	OwnerID      string          `gorm:"column:owner_id;index;not null"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Borrower     string          `gorm:"column:borrower;not null"`
	Lender       string          `gorm:"column:lender;not null"`
	Direction    string          `gorm:"column:direction;not null"`
	InterestRate decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null"`
	DueDate      time.Time       `gorm:"column:due_date;type:date;not null"`
	Status       string          `gorm:"column:status;not null;default:active"`
	Description  string          `gorm:"column:description"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string {
	return "loans"
}
