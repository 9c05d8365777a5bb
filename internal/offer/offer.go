package offer

import (
	"fmt"
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	offerDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/offer"
)

type Category string

const (
	CategoryFood          Category = "food"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryTravel        Category = "travel"
)

var Categories = []Category{CategoryFood, CategoryShopping, CategoryEntertainment, CategoryTravel}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown offer category %q", s)
}

type Offer struct {
	ID         string    `json:"id"`
	Brand      string    `json:"brand"`
	Title      string    `json:"title"`
	Discount   string    `json:"discount"`
	Category   Category  `json:"category"`
	ValidUntil time.Time `json:"valid_until"`
	Code       *string   `json:"code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func CategoryOf(o *Offer) string { return string(o.Category) }

func ToDataModel(o *Offer) *offerDatamodel.Offer {
	dm := &offerDatamodel.Offer{
		Brand:      o.Brand,
		Title:      o.Title,
		Discount:   o.Discount,
		Category:   string(o.Category),
		ValidUntil: aggregate.CalendarDay(o.ValidUntil),
		Code:       o.Code,
		CreatedAt:  o.CreatedAt,
	}
	dm.ID = o.ID
	return dm
}

func FromDataModel(dm *offerDatamodel.Offer) (*Offer, error) {
	c, err := ParseCategory(dm.Category)
	if err != nil {
		return nil, err
	}
	return &Offer{
		ID:         dm.ID,
		Brand:      dm.Brand,
		Title:      dm.Title,
		Discount:   dm.Discount,
		Category:   c,
		ValidUntil: aggregate.CalendarDay(dm.ValidUntil),
		Code:       dm.Code,
		CreatedAt:  dm.CreatedAt,
	}, nil
}
