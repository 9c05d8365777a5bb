package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/budget"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/investment"
)

const (
	highShare        = 40.0
	lowTransport     = 20.0
	heavyWeight      = 50.0
	monthlySaveBoost = 500
	autoSaveAmount   = 1000
)

// Breakdown lists the categories with spending, largest first.
func Breakdown(overview budget.Overview) []BreakdownLine {
	lines := make([]BreakdownLine, 0, len(overview.CategoryTotals))
	for _, t := range overview.CategoryTotals {
		if t.Amount.IsZero() {
			continue
		}
		lines = append(lines, BreakdownLine{Category: t.Category, Amount: t.Amount, Share: t.Share})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Amount.GreaterThan(lines[j].Amount) })
	return lines
}

func SpendingInsights(overview budget.Overview) []Insight {
	out := make([]Insight, 0, 3)

	breakdown := Breakdown(overview)
	if len(breakdown) > 0 {
		top := breakdown[0]
		if top.Share >= highShare {
			out = append(out, Insight{
				Kind:       KindWarning,
				Title:      fmt.Sprintf("High %s Spending", titleCase(string(top.Category))),
				Message:    fmt.Sprintf("%.0f%% of your spending this month went on %s.", top.Share, top.Category),
				Suggestion: "Set a weekly cap for this category and review it every Sunday.",
				Impact:     fmt.Sprintf("%s potential savings", rupees(top.Amount.Div(decimal.NewFromInt(4)))),
			})
		} else {
			out = append(out, Insight{
				Kind:       KindPositive,
				Title:      "Balanced Spending",
				Message:    fmt.Sprintf("No category takes more than %.0f%% of your spending.", highShare),
				Suggestion: "Keep spreading your spending the way you are.",
				Impact:     fmt.Sprintf("Largest category: %s", top.Category),
			})
		}
	}

	for _, t := range overview.CategoryTotals {
		if t.Category == expense.CategoryTransport && !t.Amount.IsZero() && t.Share < lowTransport {
			out = append(out, Insight{
				Kind:       KindPositive,
				Title:      "Great Transport Management",
				Message:    fmt.Sprintf("Transport is only %.0f%% of your spending.", t.Share),
				Suggestion: "Keep using public transport and carpooling with friends.",
				Impact:     fmt.Sprintf("%s spent on transport", rupees(t.Amount)),
			})
		}
	}

	impact := fmt.Sprintf("%s remaining", rupees(overview.Remaining))
	suggestion := "You're on track! Maintain current spending to finish within budget."
	kind := KindNeutral
	if overview.Remaining.IsNegative() {
		impact = fmt.Sprintf("%s over budget", rupees(overview.Remaining.Neg()))
		suggestion = "Pause non-essential spending until next month."
		kind = KindWarning
	}
	out = append(out, Insight{
		Kind:       kind,
		Title:      "Budget Progress",
		Message:    fmt.Sprintf("You've used %.1f%% of your monthly budget.", overview.PercentUsed),
		Suggestion: suggestion,
		Impact:     impact,
	})
	return out
}

func SavingsInsights(saverStreak int) []Insight {
	streak := Insight{
		Kind:       KindPositive,
		Title:      "Consistent Saver",
		Message:    fmt.Sprintf("Your %d-day saving streak is impressive!", saverStreak),
		Suggestion: fmt.Sprintf("Consider increasing your monthly savings target by %s.", rupees(decimal.NewFromInt(monthlySaveBoost))),
		Impact:     fmt.Sprintf("%s extra annually", rupees(decimal.NewFromInt(monthlySaveBoost*12))),
	}
	if saverStreak == 0 {
		streak = Insight{
			Kind:       KindSuggestion,
			Title:      "Start a Streak",
			Message:    "Save something today to start your saving streak.",
			Suggestion: "Even ₹50 a day adds up.",
			Impact:     fmt.Sprintf("%s a year", rupees(decimal.NewFromInt(50*365))),
		}
	}

	return []Insight{streak, {
		Kind:       KindSuggestion,
		Title:      "Automation Opportunity",
		Message:    "Set up automatic transfers to maximize your savings potential.",
		Suggestion: fmt.Sprintf("Auto-save %s on every salary/allowance day.", rupees(decimal.NewFromInt(autoSaveAmount))),
		Impact:     fmt.Sprintf("%s annual savings", rupees(decimal.NewFromInt(autoSaveAmount*12))),
	}}
}

func InvestmentInsights(portfolio investment.PortfolioView) []Insight {
	if len(portfolio.Holdings) == 0 {
		return []Insight{{
			Kind:       KindSuggestion,
			Title:      "Start Investing",
			Message:    "You have no investments yet.",
			Suggestion: "A small monthly SIP is an easy way to begin.",
			Impact:     "Compounding works best when started early",
		}}
	}

	performance := Insight{
		Kind:       KindPositive,
		Title:      "Portfolio Performance",
		Message:    fmt.Sprintf("Your investments are up %.1f%%.", portfolio.GainLossPercent),
		Suggestion: fmt.Sprintf("Consider increasing your monthly SIP by %s.", rupees(decimal.NewFromInt(monthlySaveBoost))),
		Impact:     fmt.Sprintf("%s gained so far", rupees(portfolio.GainLoss)),
	}
	if portfolio.GainLoss.IsNegative() {
		performance.Kind = KindWarning
		performance.Message = fmt.Sprintf("Your investments are down %.1f%%.", -portfolio.GainLossPercent)
		performance.Suggestion = "Avoid selling in a panic; review your holdings' fundamentals."
		performance.Impact = fmt.Sprintf("%s below what you put in", rupees(portfolio.GainLoss.Neg()))
	}

	investments := make([]*investment.Investment, len(portfolio.Holdings))
	for i, h := range portfolio.Holdings {
		investments[i] = h.Investment
	}
	weights := aggregate.GroupByCategory(investments, func(i *investment.Investment) investment.Type { return i.Type }, investment.CurrentValueOf)

	heaviest, weight := investment.Type(""), decimal.Zero
	for _, t := range investment.Types {
		if w, ok := weights[t]; ok && w.GreaterThan(weight) {
			heaviest, weight = t, w
		}
	}
	share := aggregate.ShareOf(weight, portfolio.TotalCurrentValue)

	diversification := Insight{
		Kind:       KindPositive,
		Title:      "Well Diversified",
		Message:    fmt.Sprintf("No single asset type is more than %.0f%% of your portfolio.", heavyWeight),
		Suggestion: "Rebalance once a quarter to keep it that way.",
		Impact:     "Lower portfolio volatility",
	}
	if share > heavyWeight {
		diversification = Insight{
			Kind:       KindSuggestion,
			Title:      "Diversification Tip",
			Message:    fmt.Sprintf("%.0f%% of your portfolio is in %s.", share, heavyLabel(heaviest)),
			Suggestion: "Allocate 20% to gold for better risk management.",
			Impact:     "Reduced portfolio volatility",
		}
		if heaviest == investment.TypeGold {
			diversification.Suggestion = "Consider an index fund to balance your gold holdings."
		}
	}

	return []Insight{performance, diversification}
}

func heavyLabel(t investment.Type) string {
	if t == investment.TypeMutualFund {
		return "mutual funds"
	}
	return string(t)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
