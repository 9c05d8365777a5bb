package feedback

import (
	"time"

	feedbackDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/feedback"
)

type Feedback struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"-"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitFeedbackDTO struct {
	Message string `json:"message"`
}

func ToDataModel(f *Feedback) *feedbackDatamodel.Feedback {
	dm := &feedbackDatamodel.Feedback{
		OwnerID:   f.OwnerID,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
	dm.ID = f.ID
	return dm
}
