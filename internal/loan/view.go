package loan

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

// BuildLoansView splits loans by their recorded direction. Totals cover both
// directions whatever the filter; the status counts use effective status.
func BuildLoansView(loans []*Loan, direction Direction, today time.Time) LoansView {
	if direction == "" {
		direction = DirectionAll
	}

	borrowed := aggregate.Where(loans, (*Loan).IsBorrowed)
	lent := aggregate.Where(loans, (*Loan).IsLent)

	lines := make([]LoanLine, 0, len(loans))
	for _, l := range loans {
		if direction != DirectionAll && l.Direction != direction {
			continue
		}
		lines = append(lines, LoanLine{
			Loan:            l,
			EffectiveStatus: l.EffectiveStatus(today),
			DaysToDeadline:  aggregate.DaysUntil(l.DueDate, today),
		})
	}

	return LoansView{
		Direction:     direction,
		Loans:         lines,
		TotalBorrowed: aggregate.SumAmount(borrowed, AmountOf),
		TotalLent:     aggregate.SumAmount(lent, AmountOf),
		ActiveCount:   aggregate.CountWhere(loans, func(l *Loan) bool { return l.EffectiveStatus(today) == StatusActive }),
		OverdueCount:  aggregate.CountWhere(loans, func(l *Loan) bool { return l.EffectiveStatus(today) == StatusOverdue }),
	}
}
