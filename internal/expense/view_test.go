package expense_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/expense"
)

var _ = Describe("BuildListView", func() {
	It("should return an empty list, not an error, when the filter matches nothing", func() {
		records := []*expense.Expense{
			{ID: "1", Amount: decimal.NewFromInt(120), Category: expense.CategoryFood, Date: day("2025-01-10")},
		}
		view := expense.BuildListView(records, "study")
		Expect(view.Expenses).NotTo(BeNil())
		Expect(view.Expenses).To(BeEmpty())
		Expect(view.Total.IsZero()).To(BeTrue())
	})

	It("should treat an empty filter as all", func() {
		view := expense.BuildListView(nil, "")
		Expect(view.Filter).To(Equal("all"))
		Expect(view.Count).To(Equal(0))
	})
})
