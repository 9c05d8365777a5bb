package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is keyed by the owner id itself; there is exactly one per owner.
type Profile struct {
	ID              string          `gorm:"column:id;primaryKey"`
	DisplayName     string          `gorm:"column:display_name"`
	Email           string          `gorm:"column:email"`
	Avatar          string          `gorm:"column:avatar"`
	MonthlyBudget   decimal.Decimal `gorm:"column:monthly_budget;type:decimal(12,2);not null"`
	TotalSavings    decimal.Decimal `gorm:"column:total_savings;type:decimal(12,2);not null"`
	Points          int             `gorm:"column:points;not null;default:0"`
	SaverStreak     int             `gorm:"column:saver_streak;not null;default:0"`
	BudgetingStreak int             `gorm:"column:budgeting_streak;not null;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
