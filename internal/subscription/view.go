package subscription

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

const upcomingCount = 3

func BuildLine(s *Subscription, today time.Time) SubscriptionLine {
	return SubscriptionLine{
		Subscription:     s,
		MonthlyCost:      s.MonthlyCost(),
		DaysUntilBilling: aggregate.DaysUntil(s.NextBilling, today),
	}
}

// BuildSubscriptionsView sums the monthly cost of active subscriptions and
// lists the next active bills, soonest first.
func BuildSubscriptionsView(subs []*Subscription, today time.Time) SubscriptionsView {
	lines := make([]SubscriptionLine, 0, len(subs))
	for _, s := range subs {
		lines = append(lines, BuildLine(s, today))
	}

	active := aggregate.Where(subs, (*Subscription).Active)
	soonest := aggregate.SortByDate(active, func(s *Subscription) int64 { return aggregate.DateKey(s.NextBilling) }, false)

	upcoming := make([]SubscriptionLine, 0, upcomingCount)
	for _, s := range aggregate.Top(soonest, upcomingCount) {
		upcoming = append(upcoming, BuildLine(s, today))
	}

	return SubscriptionsView{
		Subscriptions: lines,
		Upcoming:      upcoming,
		MonthlySpend:  aggregate.SumAmount(active, (*Subscription).MonthlyCost),
		ActiveCount:   len(active),
		AutopayCount:  aggregate.CountWhere(subs, func(s *Subscription) bool { return s.Autopay }),
	}
}
