package splitbill

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

// BuildBillLine works out what moves between me and the others. Settled bills
// owe nothing either way.
func BuildBillLine(b *Bill, me string) BillLine {
	share := b.Share()
	line := BillLine{
		Bill:     b,
		Share:    share,
		PaidByMe: b.PaidBy == me,
		OwedToMe: decimal.Zero,
		OwedByMe: decimal.Zero,
	}
	if b.Settled {
		return line
	}

	if line.PaidByMe {
		others := len(b.Participants)
		if b.Includes(me) {
			others--
		}
		line.OwedToMe = share.Mul(decimal.NewFromInt(int64(others)))
	} else if b.Includes(me) {
		line.OwedByMe = share
	}
	return line
}

func BuildBillsView(bills []*Bill, me string) BillsView {
	sorted := aggregate.SortByDate(bills, func(b *Bill) int64 { return aggregate.DateKey(b.Date) }, true)

	lines := make([]BillLine, 0, len(sorted))
	for _, b := range sorted {
		lines = append(lines, BuildBillLine(b, me))
	}

	return BillsView{
		Bills:         lines,
		PendingCount:  aggregate.CountWhere(bills, func(b *Bill) bool { return !b.Settled }),
		TotalOwedToMe: aggregate.SumAmount(lines, func(l BillLine) decimal.Decimal { return l.OwedToMe }),
		TotalOwedByMe: aggregate.SumAmount(lines, func(l BillLine) decimal.Decimal { return l.OwedByMe }),
	}
}
