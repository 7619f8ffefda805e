// file: internals/features/school/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is the tenant root. Classrooms, subjects, teachers, timings and
// schedule copies all hang off a school.
type SchoolModel struct {
	SchoolID uuid.UUID `json:"school_id" gorm:"type:uuid;primaryKey;column:school_id"`

	SchoolName    string  `json:"school_name" gorm:"type:text;not null;column:school_name"`
	SchoolCode    string  `json:"school_code" gorm:"type:varchar(20);not null;uniqueIndex;column:school_code"`
	SchoolAddress *string `json:"school_address,omitempty" gorm:"type:text;column:school_address"`
	SchoolPhone   *string `json:"school_phone,omitempty" gorm:"type:varchar(20);column:school_phone"`

	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;autoCreateTime"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;autoUpdateTime"`
	SchoolDeletedAt gorm.DeletedAt `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;index"`
}

func (SchoolModel) TableName() string { return "schools" }

func (s *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if s.SchoolID == uuid.Nil {
		s.SchoolID = uuid.New()
	}
	return nil
}
