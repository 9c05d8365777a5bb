package gig

import "github.com/shopspring/decimal"

type GigsView struct {
	Type              string          `json:"type"`
	Search            string          `json:"search"`
	Gigs              []*Gig          `json:"gigs"`
	CountByType       map[string]int  `json:"count_by_type"`
	AverageHourlyRate decimal.Decimal `json:"average_hourly_rate"`
	Stale             bool            `json:"stale"`
}
