package aggregate_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

type record struct {
	id       string
	amount   decimal.Decimal
	category string
	date     time.Time
}

func amountOf(r record) decimal.Decimal { return r.amount }
func categoryOf(r record) string        { return r.category }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var _ = Describe("Aggregate", func() {
	var records []record

	BeforeEach(func() {
		records = []record{
			{id: "1", amount: d("120"), category: "food"},
			{id: "2", amount: d("45"), category: "transport"},
			{id: "3", amount: d("250"), category: "entertainment"},
			{id: "4", amount: d("800"), category: "study"},
			{id: "5", amount: d("30.50"), category: "food"},
		}
	})

	Describe("SumAmount", func() {
		It("should return zero for an empty sequence", func() {
			Expect(aggregate.SumAmount([]record{}, amountOf).IsZero()).To(BeTrue())
			Expect(aggregate.SumAmount[record](nil, amountOf).IsZero()).To(BeTrue())
		})

		It("should equal the arithmetic sum", func() {
			Expect(aggregate.SumAmount(records, amountOf).Equal(d("1245.50"))).To(BeTrue())
		})
	})

	Describe("PercentageUsed", func() {
		It("should return 0 when allocated is zero", func() {
			Expect(aggregate.PercentageUsed(d("500"), decimal.Zero)).To(Equal(0.0))
			Expect(aggregate.PercentageUsed(decimal.Zero, decimal.Zero)).To(Equal(0.0))
		})

		It("should compute spent over allocated", func() {
			Expect(aggregate.PercentageUsed(d("165"), d("8000"))).To(BeNumerically("~", 2.0625, 1e-9))
			Expect(aggregate.PercentageUsed(d("2500"), d("2000"))).To(BeNumerically("~", 125.0, 1e-9))
		})
	})

	Describe("Remaining", func() {
		DescribeTable("remaining plus spent equals budget",
			func(budget, spent string) {
				r := aggregate.Remaining(d(budget), d(spent))
				Expect(r.Add(d(spent)).Equal(d(budget))).To(BeTrue())
			},
			Entry("under budget", "8000", "165"),
			Entry("over budget", "2000", "2500"),
			Entry("zero budget", "0", "10"),
			Entry("fractional", "99.99", "0.01"),
		)

		It("should label the sign", func() {
			Expect(aggregate.RemainingLabel(d("7835"))).To(Equal(aggregate.LabelLeftToSpend))
			Expect(aggregate.RemainingLabel(decimal.Zero)).To(Equal(aggregate.LabelLeftToSpend))
			Expect(aggregate.RemainingLabel(d("-500"))).To(Equal(aggregate.LabelOverBudget))
		})
	})

	Describe("GroupByCategory", func() {
		It("should partition the input exactly", func() {
			buckets := aggregate.GroupByCategory(records, categoryOf, amountOf)
			Expect(buckets).To(HaveLen(4))
			Expect(buckets["food"].Equal(d("150.50"))).To(BeTrue())

			total := decimal.Zero
			for _, v := range buckets {
				total = total.Add(v)
			}
			Expect(total.Equal(aggregate.SumAmount(records, amountOf))).To(BeTrue())
		})

		It("should only contain categories that are present", func() {
			buckets := aggregate.GroupByCategory(records[:2], categoryOf, amountOf)
			Expect(buckets).To(HaveKey("food"))
			Expect(buckets).To(HaveKey("transport"))
			Expect(buckets).NotTo(HaveKey("study"))
		})
	})

	Describe("FilterByField", func() {
		It("should return the input unchanged for all", func() {
			out := aggregate.FilterByField(records, categoryOf, aggregate.All)
			Expect(out).To(Equal(records))
		})

		It("should keep matching records in order", func() {
			out := aggregate.FilterByField(records, categoryOf, "food")
			Expect(out).To(HaveLen(2))
			Expect(out[0].id).To(Equal("1"))
			Expect(out[1].id).To(Equal("5"))
		})

		It("should return an empty, non-nil result when nothing matches", func() {
			out := aggregate.FilterByField(records, categoryOf, "other")
			Expect(out).NotTo(BeNil())
			Expect(out).To(BeEmpty())
		})
	})

	Describe("SortByDate", func() {
		It("should sort without touching the input", func() {
			in := []record{
				{id: "a", date: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)},
				{id: "b", date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
				{id: "c", date: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
			}
			out := aggregate.SortByDate(in, func(r record) int64 { return aggregate.DateKey(r.date) }, true)
			Expect([]string{out[0].id, out[1].id, out[2].id}).To(Equal([]string{"b", "c", "a"}))
			Expect(in[0].id).To(Equal("a"))
		})
	})

	Describe("BarWidth and Top", func() {
		It("should clamp percentages", func() {
			Expect(aggregate.BarWidth(125)).To(Equal(100.0))
			Expect(aggregate.BarWidth(-3)).To(Equal(0.0))
			Expect(aggregate.BarWidth(42.5)).To(Equal(42.5))
		})

		It("should cap the number of records", func() {
			Expect(aggregate.Top(records, 3)).To(HaveLen(3))
			Expect(aggregate.Top(records, 10)).To(HaveLen(5))
		})
	})

	Describe("MonthlyEquivalent", func() {
		It("should spread yearly charges over twelve months", func() {
			Expect(aggregate.MonthlyEquivalent(d("1200"), aggregate.CycleYearly).Equal(d("100"))).To(BeTrue())
			Expect(aggregate.MonthlyEquivalent(d("199"), aggregate.CycleMonthly).Equal(d("199"))).To(BeTrue())
		})
	})

	Describe("DaysUntil", func() {
		ref := time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC)

		It("should be antisymmetric around the reference day", func() {
			Expect(aggregate.DaysUntil(ref.AddDate(0, 0, 1), ref)).To(Equal(1))
			Expect(aggregate.DaysUntil(ref, ref)).To(Equal(0))
			Expect(aggregate.DaysUntil(ref.AddDate(0, 0, -1), ref)).To(Equal(-1))
		})

		It("should ignore the time of day", func() {
			lateTonight := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
			earlyTomorrow := time.Date(2025, 1, 11, 0, 1, 0, 0, time.UTC)
			Expect(aggregate.DaysUntil(earlyTomorrow, lateTonight)).To(Equal(1))
			Expect(aggregate.DaysUntil(lateTonight, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))).To(Equal(0))
		})

		It("should count across months", func() {
			due, err := aggregate.ParseDate("2025-02-15")
			Expect(err).NotTo(HaveOccurred())
			Expect(aggregate.DaysUntil(due, ref)).To(Equal(36))
		})
	})
})
