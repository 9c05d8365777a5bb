package offer

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

const expiringSoonDays = 3

// BuildOfferLine treats an offer as expired from its valid_until day onward.
func BuildOfferLine(o *Offer, today time.Time) OfferLine {
	days := aggregate.DaysUntil(o.ValidUntil, today)
	return OfferLine{
		Offer:        o,
		DaysLeft:     days,
		Expired:      days <= 0,
		ExpiringSoon: days > 0 && days <= expiringSoonDays,
	}
}

func BuildOffersView(offers []*Offer, category string, today time.Time) OffersView {
	if category == "" {
		category = aggregate.All
	}

	counts := make(map[string]int, len(Categories))
	for _, c := range Categories {
		counts[string(c)] = 0
	}
	for k, n := range aggregate.CountBy(offers, CategoryOf) {
		counts[k] = n
	}

	filtered := aggregate.FilterByField(offers, CategoryOf, category)
	lines := make([]OfferLine, len(filtered))
	for i, o := range filtered {
		lines[i] = BuildOfferLine(o, today)
	}

	return OffersView{
		Category:        category,
		Offers:          lines,
		CountByCategory: counts,
	}
}
