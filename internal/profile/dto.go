package profile

import "github.com/shopspring/decimal"

type UpdateProfileDTO struct {
	DisplayName   *string          `json:"display_name,omitempty"`
	Avatar        *string          `json:"avatar,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget,omitempty"`
}

type ProfileResponse struct {
	Profile *Profile `json:"profile"`
	Stale   bool     `json:"stale"`
}
