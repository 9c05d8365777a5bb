package gig

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
)

// AverageHourlyRate is rounded to whole rupees and is zero for an empty
// catalog.
func AverageHourlyRate(gigs []*Gig) decimal.Decimal {
	if len(gigs) == 0 {
		return decimal.Zero
	}
	total := aggregate.SumAmount(gigs, HourlyRateOf)
	return total.Div(decimal.NewFromInt(int64(len(gigs)))).Round(0)
}

// BuildGigsView filters by type and search term. Counts and the average rate
// describe the whole catalog so they do not jump around while filtering.
func BuildGigsView(gigs []*Gig, gigType, search string) GigsView {
	if gigType == "" {
		gigType = aggregate.All
	}

	counts := make(map[string]int, len(Types))
	for _, t := range Types {
		counts[string(t)] = 0
	}
	for k, n := range aggregate.CountBy(gigs, TypeOf) {
		counts[k] = n
	}

	filtered := aggregate.FilterByField(gigs, TypeOf, gigType)
	return GigsView{
		Type:              gigType,
		Search:            search,
		Gigs:              aggregate.Where(filtered, func(g *Gig) bool { return g.Matches(search) }),
		CountByType:       counts,
		AverageHourlyRate: AverageHourlyRate(gigs),
	}
}
