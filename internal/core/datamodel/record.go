package datamodel

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is embedded by every owned row. Ids are generated on insert when the
// caller left them empty.
type Record struct {
	ID string `gorm:"column:id;primaryKey"`
}

func (r *Record) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
