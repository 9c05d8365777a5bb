package groupfund

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	groupfundDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/groupfund"
)

type Contributor struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
}

// Fund is a shared savings goal. CurrentAmount is the saved total; the
// contributor list is a breakdown of it that may lag behind for funds that
// were recorded elsewhere.
type Fund struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"-"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Contributors  []Contributor   `json:"contributors"`
	Deadline      time.Time       `json:"deadline"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (f *Fund) GoalReached() bool {
	return !f.TargetAmount.IsZero() && f.CurrentAmount.GreaterThanOrEqual(f.TargetAmount)
}

func CurrentOf(f *Fund) decimal.Decimal { return f.CurrentAmount }

func TargetOf(f *Fund) decimal.Decimal { return f.TargetAmount }

func ToDataModel(f *Fund) *groupfundDatamodel.GroupFund {
	contributors := make([]groupfundDatamodel.Contributor, len(f.Contributors))
	for i, c := range f.Contributors {
		contributors[i] = groupfundDatamodel.Contributor{UserID: c.UserID, Amount: c.Amount}
	}
	dm := &groupfundDatamodel.GroupFund{
		OwnerID:       f.OwnerID,
		Title:         f.Title,
		Description:   f.Description,
		TargetAmount:  f.TargetAmount,
		CurrentAmount: f.CurrentAmount,
		Contributors:  contributors,
		Deadline:      f.Deadline,
		CreatedAt:     f.CreatedAt,
	}
	dm.ID = f.ID
	return dm
}

func FromDataModel(dm *groupfundDatamodel.GroupFund) *Fund {
	contributors := make([]Contributor, len(dm.Contributors))
	for i, c := range dm.Contributors {
		contributors[i] = Contributor{UserID: c.UserID, Amount: c.Amount}
	}
	return &Fund{
		ID:            dm.ID,
		OwnerID:       dm.OwnerID,
		Title:         dm.Title,
		Description:   dm.Description,
		TargetAmount:  dm.TargetAmount,
		CurrentAmount: dm.CurrentAmount,
		Contributors:  contributors,
		Deadline:      aggregate.CalendarDay(dm.Deadline),
		CreatedAt:     dm.CreatedAt,
	}
}

// addContribution credits amount to userID and to the fund total in one step.
func addContribution(dm *groupfundDatamodel.GroupFund, userID string, amount decimal.Decimal) {
	dm.CurrentAmount = dm.CurrentAmount.Add(amount)
	for i := range dm.Contributors {
		if dm.Contributors[i].UserID == userID {
			dm.Contributors[i].Amount = dm.Contributors[i].Amount.Add(amount)
			return
		}
	}
	dm.Contributors = append(dm.Contributors, groupfundDatamodel.Contributor{UserID: userID, Amount: amount})
}
