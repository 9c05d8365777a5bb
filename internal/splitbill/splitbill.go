package splitbill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	splitbillDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/splitbill"
)

// Bill is a shared expense split evenly across participants, who are
// referenced by user id.
type Bill struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"-"`
	Title        string          `json:"title"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Participants []string        `json:"participants"`
	PaidBy       string          `json:"paid_by"`
	Date         time.Time       `json:"date"`
	Settled      bool            `json:"settled"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Share is the even per-participant split, rounded to paise.
func (b *Bill) Share() decimal.Decimal {
	if len(b.Participants) == 0 {
		return decimal.Zero
	}
	return b.TotalAmount.DivRound(decimal.NewFromInt(int64(len(b.Participants))), 2)
}

func (b *Bill) Includes(userID string) bool {
	for _, p := range b.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

func ToDataModel(b *Bill) *splitbillDatamodel.SplitBill {
	dm := &splitbillDatamodel.SplitBill{
		OwnerID:      b.OwnerID,
		Title:        b.Title,
		TotalAmount:  b.TotalAmount,
		Participants: b.Participants,
		PaidBy:       b.PaidBy,
		Date:         b.Date,
		Settled:      b.Settled,
		CreatedAt:    b.CreatedAt,
	}
	dm.ID = b.ID
	return dm
}

func FromDataModel(dm *splitbillDatamodel.SplitBill) *Bill {
	participants := dm.Participants
	if participants == nil {
		participants = []string{}
	}
	return &Bill{
		ID:           dm.ID,
		OwnerID:      dm.OwnerID,
		Title:        dm.Title,
		TotalAmount:  dm.TotalAmount,
		Participants: participants,
		PaidBy:       dm.PaidBy,
		Date:         aggregate.CalendarDay(dm.Date),
		Settled:      dm.Settled,
		CreatedAt:    dm.CreatedAt,
	}
}
