package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventTypeExpenseRecorded    = "expense.recorded"
	EventTypeCategoryOverBudget = "budget.category_over_budget"
	EventTypeFundGoalReached    = "fund.goal_reached"
	EventTypeLoanOverdue        = "loan.overdue"
	EventTypePaymentSent        = "payment.sent"
)

// Types lists every domain event this service emits.
var Types = []string{
	EventTypeExpenseRecorded,
	EventTypeCategoryOverBudget,
	EventTypeFundGoalReached,
	EventTypeLoanOverdue,
	EventTypePaymentSent,
}

func newBase(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

type ExpenseRecordedEvent struct {
	BaseEvent
	ExpenseID string          `json:"expense_id"`
	OwnerID   string          `json:"owner_id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
}

func NewExpenseRecordedEvent(expenseID, ownerID string, amount decimal.Decimal, category string) *ExpenseRecordedEvent {
	return &ExpenseRecordedEvent{
		BaseEvent: newBase(EventTypeExpenseRecorded, map[string]interface{}{
			"expense_id": expenseID,
			"owner_id":   ownerID,
			"amount":     amount.String(),
			"category":   category,
		}),
		ExpenseID: expenseID,
		OwnerID:   ownerID,
		Amount:    amount,
		Category:  category,
	}
}

type CategoryOverBudgetEvent struct {
	BaseEvent
	CategoryID string          `json:"category_id"`
	OwnerID    string          `json:"owner_id"`
	Name       string          `json:"name"`
	Overage    decimal.Decimal `json:"overage"`
}

func NewCategoryOverBudgetEvent(categoryID, ownerID, name string, overage decimal.Decimal) *CategoryOverBudgetEvent {
	return &CategoryOverBudgetEvent{
		BaseEvent: newBase(EventTypeCategoryOverBudget, map[string]interface{}{
			"category_id": categoryID,
			"owner_id":    ownerID,
			"name":        name,
			"overage":     overage.String(),
		}),
		CategoryID: categoryID,
		OwnerID:    ownerID,
		Name:       name,
		Overage:    overage,
	}
}

type FundGoalReachedEvent struct {
	BaseEvent
	FundID  string          `json:"fund_id"`
	OwnerID string          `json:"owner_id"`
	Target  decimal.Decimal `json:"target"`
}

func NewFundGoalReachedEvent(fundID, ownerID string, target decimal.Decimal) *FundGoalReachedEvent {
	return &FundGoalReachedEvent{
		BaseEvent: newBase(EventTypeFundGoalReached, map[string]interface{}{
			"fund_id":  fundID,
			"owner_id": ownerID,
			"target":   target.String(),
		}),
		FundID:  fundID,
		OwnerID: ownerID,
		Target:  target,
	}
}

type LoanOverdueEvent struct {
	BaseEvent
	LoanID  string    `json:"loan_id"`
	OwnerID string    `json:"owner_id"`
	DueDate time.Time `json:"due_date"`
}

func NewLoanOverdueEvent(loanID, ownerID string, dueDate time.Time) *LoanOverdueEvent {
	return &LoanOverdueEvent{
		BaseEvent: newBase(EventTypeLoanOverdue, map[string]interface{}{
			"loan_id":  loanID,
			"owner_id": ownerID,
			"due_date": dueDate.Format("2006-01-02"),
		}),
		LoanID:  loanID,
		OwnerID: ownerID,
		DueDate: dueDate,
	}
}

type PaymentSentEvent struct {
	BaseEvent
	TransactionID string          `json:"transaction_id"`
	OwnerID       string          `json:"owner_id"`
	ContactID     string          `json:"contact_id"`
	Amount        decimal.Decimal `json:"amount"`
}

func NewPaymentSentEvent(transactionID, ownerID, contactID string, amount decimal.Decimal) *PaymentSentEvent {
	return &PaymentSentEvent{
		BaseEvent: newBase(EventTypePaymentSent, map[string]interface{}{
			"transaction_id": transactionID,
			"owner_id":       ownerID,
			"contact_id":     contactID,
			"amount":         amount.String(),
		}),
		TransactionID: transactionID,
		OwnerID:       ownerID,
		ContactID:     contactID,
		Amount:        amount,
	}
}
