package investment

import (
	"github.com/frahmantamala/student-finance/internal/aggregate"
)

func BuildHolding(i *Investment) Holding {
	change := i.CurrentValue.Sub(i.Amount)
	return Holding{
		Investment:    i,
		Change:        change,
		ChangePercent: aggregate.ShareOf(change, i.Amount),
	}
}

// BuildPortfolioView totals the holdings. The gain percentage is 0 when
// nothing was invested.
func BuildPortfolioView(investments []*Investment) PortfolioView {
	holdings := make([]Holding, 0, len(investments))
	for _, i := range investments {
		holdings = append(holdings, BuildHolding(i))
	}

	invested := aggregate.SumAmount(investments, AmountOf)
	current := aggregate.SumAmount(investments, CurrentValueOf)
	gain := current.Sub(invested)

	return PortfolioView{
		Holdings:          holdings,
		TotalInvested:     invested,
		TotalCurrentValue: current,
		GainLoss:          gain,
		GainLossPercent:   aggregate.ShareOf(gain, invested),
	}
}
