package insight

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/expense"
)

type BreakdownLine struct {
	Category expense.Category `json:"category"`
	Amount   decimal.Decimal  `json:"amount"`
	Share    float64          `json:"share"`
}

type InsightsView struct {
	Tab       Tab             `json:"tab"`
	Insights  []Insight       `json:"insights"`
	Breakdown []BreakdownLine `json:"breakdown,omitempty"`
	Stale     bool            `json:"stale"`
}
