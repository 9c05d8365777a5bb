package subscription

import "github.com/shopspring/decimal"

type CreateSubscriptionDTO struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	BillingCycle string          `json:"billing_cycle"`
	NextBilling  string          `json:"next_billing"`
	Autopay      bool            `json:"autopay"`
	Category     string          `json:"category"`
}

type UpdateSubscriptionDTO struct {
	Status      *string          `json:"status,omitempty"`
	Autopay     *bool            `json:"autopay,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	NextBilling *string          `json:"next_billing,omitempty"`
}

type SubscriptionLine struct {
	*Subscription
	MonthlyCost      decimal.Decimal `json:"monthly_cost"`
	DaysUntilBilling int             `json:"days_until_billing"`
}

type SubscriptionsView struct {
	Subscriptions []SubscriptionLine `json:"subscriptions"`
	Upcoming      []SubscriptionLine `json:"upcoming"`
	MonthlySpend  decimal.Decimal    `json:"monthly_spend"`
	ActiveCount   int                `json:"active_count"`
	AutopayCount  int                `json:"autopay_count"`
	Stale         bool               `json:"stale"`
}
