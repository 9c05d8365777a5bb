package feedback

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/core/datamodel"
)

type Feedback struct {
	datamodel.Record
	OwnerID   string    `gorm:"column:owner_id;index;not null"`
	Message   string    `gorm:"column:message;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
