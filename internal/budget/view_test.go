package budget_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/budget"
	"github.com/frahmantamala/student-finance/internal/expense"
)

func spent(id string, category expense.Category, amount int64, d int) *expense.Expense {
	return &expense.Expense{
		ID:       id,
		Title:    id,
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC),
	}
}

var _ = Describe("Budget views", func() {
	Describe("BuildOverview", func() {
		It("should total expenses against the monthly budget", func() {
			expenses := []*expense.Expense{
				spent("lunch", expense.CategoryFood, 120, 10),
				spent("bus", expense.CategoryTransport, 45, 10),
			}

			view := budget.BuildOverview(decimal.NewFromInt(8000), expenses, "all")
			Expect(view.TotalSpent.Equal(decimal.NewFromInt(165))).To(BeTrue())
			Expect(view.PercentUsed).To(BeNumerically("~", 2.06, 0.01))
			Expect(view.Remaining.Equal(decimal.NewFromInt(7835))).To(BeTrue())
			Expect(view.RemainingLabel).To(Equal(aggregate.LabelLeftToSpend))
		})

		It("should list a total for every expense category", func() {
			expenses := []*expense.Expense{
				spent("lunch", expense.CategoryFood, 120, 10),
				spent("bus", expense.CategoryTransport, 80, 10),
			}

			view := budget.BuildOverview(decimal.NewFromInt(8000), expenses, "")
			Expect(view.CategoryTotals).To(HaveLen(len(expense.Categories)))
			Expect(view.CategoryTotals[0].Category).To(Equal(expense.CategoryFood))
			Expect(view.CategoryTotals[0].Share).To(BeNumerically("~", 60.0, 1e-9))
			Expect(view.CategoryTotals[3].Amount.IsZero()).To(BeTrue())
			Expect(view.CategoryTotals[3].Share).To(Equal(0.0))
		})

		It("should keep totals over all expenses when a filter is selected", func() {
			expenses := []*expense.Expense{
				spent("lunch", expense.CategoryFood, 120, 8),
				spent("bus", expense.CategoryTransport, 45, 9),
				spent("dinner", expense.CategoryFood, 200, 10),
			}

			view := budget.BuildOverview(decimal.NewFromInt(8000), expenses, "food")
			Expect(view.TotalSpent.Equal(decimal.NewFromInt(365))).To(BeTrue())
			Expect(view.Expenses).To(HaveLen(2))
			Expect(view.Expenses[0].ID).To(Equal("dinner"))
		})

		It("should cap the bar width and flip the label once over budget", func() {
			expenses := []*expense.Expense{spent("laptop", expense.CategoryStudy, 9000, 10)}

			view := budget.BuildOverview(decimal.NewFromInt(8000), expenses, "all")
			Expect(view.PercentUsed).To(BeNumerically(">", 100))
			Expect(view.BarWidth).To(Equal(100.0))
			Expect(view.RemainingLabel).To(Equal(aggregate.LabelOverBudget))
		})

		It("should yield zeros for no expenses and no budget", func() {
			view := budget.BuildOverview(decimal.Zero, nil, "all")
			Expect(view.TotalSpent.IsZero()).To(BeTrue())
			Expect(view.PercentUsed).To(Equal(0.0))
			Expect(view.Expenses).To(BeEmpty())
		})
	})

	Describe("BuildCategoriesView", func() {
		It("should report the overage of an over budget category", func() {
			line := budget.BuildCategoryLine(&budget.Category{
				Name:      "Canteen",
				Allocated: decimal.NewFromInt(2000),
				Spent:     decimal.NewFromInt(2500),
			})
			Expect(line.OverBudget).To(BeTrue())
			Expect(line.Overage.Equal(decimal.NewFromInt(500))).To(BeTrue())
			Expect(line.PercentUsed).To(BeNumerically("~", 125.0, 1e-9))
			Expect(line.BarWidth).To(Equal(100.0))
		})

		It("should treat spending exactly the allocation as within budget", func() {
			line := budget.BuildCategoryLine(&budget.Category{Allocated: decimal.NewFromInt(800), Spent: decimal.NewFromInt(800)})
			Expect(line.OverBudget).To(BeFalse())
			Expect(line.Overage.IsZero()).To(BeTrue())
			Expect(line.Remaining.IsZero()).To(BeTrue())
		})

		It("should sum allocations and count over budget categories", func() {
			view := budget.BuildCategoriesView([]*budget.Category{
				{Allocated: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(2500)},
				{Allocated: decimal.NewFromInt(1500), Spent: decimal.NewFromInt(300)},
				{Allocated: decimal.Zero, Spent: decimal.Zero},
			})
			Expect(view.TotalAllocated.Equal(decimal.NewFromInt(3500))).To(BeTrue())
			Expect(view.TotalSpent.Equal(decimal.NewFromInt(2800))).To(BeTrue())
			Expect(view.TotalRemaining.Equal(decimal.NewFromInt(700))).To(BeTrue())
			Expect(view.OverBudgetCount).To(Equal(1))
			Expect(view.Categories[2].PercentUsed).To(Equal(0.0))
		})
	})
})
