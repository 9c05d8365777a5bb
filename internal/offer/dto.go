package offer

type OfferLine struct {
	*Offer
	DaysLeft     int  `json:"days_left"`
	Expired      bool `json:"expired"`
	ExpiringSoon bool `json:"expiring_soon"`
}

type OffersView struct {
	Category        string         `json:"category"`
	Offers          []OfferLine    `json:"offers"`
	CountByCategory map[string]int `json:"count_by_category"`
	Stale           bool           `json:"stale"`
}
