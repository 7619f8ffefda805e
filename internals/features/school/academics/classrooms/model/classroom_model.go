// file: internals/features/school/academics/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClassroomModel maps the classrooms table.
type ClassroomModel struct {
	ClassroomID       uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id"`
	ClassroomSchoolID uuid.UUID `json:"classroom_school_id" gorm:"type:uuid;not null;index;column:classroom_school_id"`

	ClassroomName     string  `json:"classroom_name" gorm:"type:text;not null;column:classroom_name"`
	ClassroomCode     *string `json:"classroom_code,omitempty" gorm:"type:text;column:classroom_code"`
	ClassroomLocation *string `json:"classroom_location,omitempty" gorm:"type:text;column:classroom_location"`
	ClassroomCapacity *int    `json:"classroom_capacity,omitempty" gorm:"column:classroom_capacity"`

	// Facility tags: projector, lab, whiteboard, ...
	ClassroomFeatures pq.StringArray `json:"classroom_features" gorm:"type:text[];column:classroom_features"`

	ClassroomCreatedAt time.Time      `json:"classroom_created_at" gorm:"column:classroom_created_at;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `json:"classroom_updated_at" gorm:"column:classroom_updated_at;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `json:"classroom_deleted_at,omitempty" gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (r *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if r.ClassroomID == uuid.Nil {
		r.ClassroomID = uuid.New()
	}
	return nil
}
