// Package insight turns the budget and portfolio aggregates into short canned
// advice blocks, one tab at a time.
package insight

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type Tab string

const (
	TabSpending    Tab = "spending"
	TabSavings     Tab = "savings"
	TabInvestments Tab = "investments"
)

var Tabs = []Tab{TabSpending, TabSavings, TabInvestments}

func TabNames() []string {
	names := make([]string, len(Tabs))
	for i, t := range Tabs {
		names[i] = string(t)
	}
	return names
}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown insight tab %q", s)
}

type Kind string

const (
	KindPositive   Kind = "positive"
	KindWarning    Kind = "warning"
	KindNeutral    Kind = "neutral"
	KindSuggestion Kind = "suggestion"
)

type Insight struct {
	Kind       Kind   `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// rupees renders whole rupees with thousands separators, e.g. ₹7,835.
func rupees(d decimal.Decimal) string {
	return "₹" + humanize.Comma(d.Round(0).IntPart())
}
