package profile

import (
	"time"

	"github.com/shopspring/decimal"

	profileDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/profile"
)

type Profile struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"display_name"`
	Email           string          `json:"email"`
	Avatar          string          `json:"avatar"`
	MonthlyBudget   decimal.Decimal `json:"monthly_budget"`
	TotalSavings    decimal.Decimal `json:"total_savings"`
	Points          int             `json:"points"`
	SaverStreak     int             `json:"saver_streak"`
	BudgetingStreak int             `json:"budgeting_streak"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func NewProfile(ownerID string, monthlyBudget decimal.Decimal) *Profile {
	now := time.Now()
	return &Profile{
		ID:            ownerID,
		MonthlyBudget: monthlyBudget,
		TotalSavings:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func ToDataModel(p *Profile) *profileDatamodel.Profile {
	return &profileDatamodel.Profile{
		ID:              p.ID,
		DisplayName:     p.DisplayName,
		Email:           p.Email,
		Avatar:          p.Avatar,
		MonthlyBudget:   p.MonthlyBudget,
		TotalSavings:    p.TotalSavings,
		Points:          p.Points,
		SaverStreak:     p.SaverStreak,
		BudgetingStreak: p.BudgetingStreak,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromDataModel(p *profileDatamodel.Profile) *Profile {
	return &Profile{
		ID:              p.ID,
		DisplayName:     p.DisplayName,
		Email:           p.Email,
		Avatar:          p.Avatar,
		MonthlyBudget:   p.MonthlyBudget,
		TotalSavings:    p.TotalSavings,
		Points:          p.Points,
		SaverStreak:     p.SaverStreak,
		BudgetingStreak: p.BudgetingStreak,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
