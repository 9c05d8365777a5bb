package gig

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	gigDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/gig"
)

type Type string

const (
	TypeTeaching Type = "teaching"
	TypeCoding   Type = "coding"
	TypeDesign   Type = "design"
	TypeWriting  Type = "writing"
	TypeOther    Type = "other"
)

var Types = []Type{TypeTeaching, TypeCoding, TypeDesign, TypeWriting, TypeOther}

func TypeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return names
}

func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown gig type %q", s)
}

type Gig struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Type         Type            `json:"type"`
	Location     string          `json:"location"`
	Requirements []string        `json:"requirements"`
	CreatedAt    time.Time       `json:"created_at"`
}

func HourlyRateOf(g *Gig) decimal.Decimal { return g.HourlyRate }

func TypeOf(g *Gig) string { return string(g.Type) }

// Matches searches title and company, ignoring case.
func (g *Gig) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Title), term) || strings.Contains(strings.ToLower(g.Company), term)
}

func ToDataModel(g *Gig) *gigDatamodel.Gig {
	dm := &gigDatamodel.Gig{
		Title:        g.Title,
		Company:      g.Company,
		HourlyRate:   g.HourlyRate,
		Type:         string(g.Type),
		Location:     g.Location,
		Requirements: g.Requirements,
		CreatedAt:    g.CreatedAt,
	}
	dm.ID = g.ID
	return dm
}

func FromDataModel(dm *gigDatamodel.Gig) (*Gig, error) {
	t, err := ParseType(dm.Type)
	if err != nil {
		return nil, err
	}
	requirements := dm.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return &Gig{
		ID:           dm.ID,
		Title:        dm.Title,
		Company:      dm.Company,
		HourlyRate:   dm.HourlyRate,
		Type:         t,
		Location:     dm.Location,
		Requirements: requirements,
		CreatedAt:    dm.CreatedAt,
	}, nil
}
