package groupfund

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

func BuildFundLine(f *Fund, today time.Time) FundLine {
	progress := aggregate.Progress(f.CurrentAmount, f.TargetAmount)
	contributed := aggregate.SumAmount(f.Contributors, func(c Contributor) decimal.Decimal { return c.Amount })

	return FundLine{
		Fund:             f,
		Progress:         progress,
		BarWidth:         aggregate.BarWidth(progress),
		Remaining:        decimal.Max(aggregate.Remaining(f.TargetAmount, f.CurrentAmount), decimal.Zero),
		DaysLeft:         aggregate.DaysUntil(f.Deadline, today),
		ContributorTotal: contributed,
		Reconciled:       contributed.Equal(f.CurrentAmount),
	}
}

func BuildFundsView(funds []*Fund, today time.Time) FundsView {
	lines := make([]FundLine, 0, len(funds))
	for _, f := range funds {
		lines = append(lines, BuildFundLine(f, today))
	}
	return FundsView{
		Funds:       lines,
		TotalSaved:  aggregate.SumAmount(funds, CurrentOf),
		TotalTarget: aggregate.SumAmount(funds, TargetOf),
	}
}
