package groupfund_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/groupfund"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func birthdayFund() *groupfund.Fund {
	return &groupfund.Fund{
		ID:            "fund-1",
		Title:         "Abhijeet's Birthday Party",
		TargetAmount:  money(2000),
		CurrentAmount: money(1200),
		Contributors: []groupfund.Contributor{
			{UserID: "1", Amount: money(400)},
			{UserID: "3", Amount: money(300)},
			{UserID: "4", Amount: money(500)},
		},
		Deadline: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
	}
}

var _ = Describe("Group fund views", func() {
	today := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)

	It("should compute progress towards the target", func() {
		line := groupfund.BuildFundLine(birthdayFund(), today)
		Expect(line.Progress).To(BeNumerically("~", 60.0, 1e-9))
		Expect(line.BarWidth).To(BeNumerically("~", 60.0, 1e-9))
		Expect(line.Remaining.Equal(money(800))).To(BeTrue())
		Expect(line.DaysLeft).To(Equal(15))
	})

	It("should flag funds whose contributors do not add up", func() {
		line := groupfund.BuildFundLine(birthdayFund(), today)
		Expect(line.Reconciled).To(BeTrue())

		trip := birthdayFund()
		trip.CurrentAmount = money(8500)
		trip.TargetAmount = money(15000)
		line = groupfund.BuildFundLine(trip, today)
		Expect(line.ContributorTotal.Equal(money(1200))).To(BeTrue())
		Expect(line.Reconciled).To(BeFalse())
	})

	It("should cap the bar and floor the remaining amount once the goal is passed", func() {
		f := birthdayFund()
		f.CurrentAmount = money(2500)
		line := groupfund.BuildFundLine(f, today)
		Expect(line.Progress).To(BeNumerically("~", 125.0, 1e-9))
		Expect(line.BarWidth).To(Equal(100.0))
		Expect(line.Remaining.IsZero()).To(BeTrue())
	})

	It("should go negative on days left after the deadline", func() {
		line := groupfund.BuildFundLine(birthdayFund(), time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC))
		Expect(line.DaysLeft).To(Equal(-1))
	})

	It("should total saved and target amounts", func() {
		trip := birthdayFund()
		trip.TargetAmount = money(15000)
		trip.CurrentAmount = money(8500)

		view := groupfund.BuildFundsView([]*groupfund.Fund{birthdayFund(), trip}, today)
		Expect(view.TotalSaved.Equal(money(9700))).To(BeTrue())
		Expect(view.TotalTarget.Equal(money(17000))).To(BeTrue())
	})

	It("should report zero progress for a zero target", func() {
		f := birthdayFund()
		f.TargetAmount = decimal.Zero
		Expect(groupfund.BuildFundLine(f, today).Progress).To(Equal(0.0))
	})
})
