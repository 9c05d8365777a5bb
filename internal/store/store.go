// Package store defines the record store boundary every screen reads from and
// writes to, plus the snapshot cache that keeps the last good read of each
// collection.
package store

import "context"

// Collection is the contract a persisted collection satisfies. An empty owner
// lists across all owners; catalog collections ignore the owner altogether.
type Collection[T any] interface {
	List(ctx context.Context, owner string) ([]*T, error)
	Insert(ctx context.Context, record *T) error
	Update(ctx context.Context, owner, id string, apply func(*T) error) (*T, error)
}

// Collection names double as snapshot keys.
const (
	Expenses         = "expenses"
	BudgetCategories = "budget_categories"
	Profiles         = "profiles"
	GroupFunds       = "group_funds"
	Loans            = "loans"
	Subscriptions    = "subscriptions"
	Investments      = "investments"
	SplitBills       = "split_bills"
	Contacts         = "contacts"
	Transactions     = "transactions"
	Gigs             = "gigs"
	Offers           = "offers"
	Feedback         = "feedback"
)
