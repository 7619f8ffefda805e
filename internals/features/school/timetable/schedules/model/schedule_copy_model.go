// file: internals/features/school/timetable/schedules/model/schedule_copy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleCopyModel is a named, versioned snapshot of a school's whole
// timetable. Invariant: at most one active copy per school; activation swaps
// the flag inside a single transaction.
type ScheduleCopyModel struct {
	ScheduleCopyID       uuid.UUID `json:"schedule_copy_id" gorm:"type:uuid;primaryKey;column:schedule_copy_id"`
	ScheduleCopySchoolID uuid.UUID `json:"schedule_copy_school_id" gorm:"type:uuid;not null;index;column:schedule_copy_school_id"`

	ScheduleCopyName     string `json:"schedule_copy_name" gorm:"type:text;not null;column:schedule_copy_name"`
	ScheduleCopyIsActive bool   `json:"schedule_copy_is_active" gorm:"not null;default:false;index;column:schedule_copy_is_active"`

	ScheduleCopyCreatedAt time.Time      `json:"schedule_copy_created_at" gorm:"column:schedule_copy_created_at;autoCreateTime"`
	ScheduleCopyUpdatedAt time.Time      `json:"schedule_copy_updated_at" gorm:"column:schedule_copy_updated_at;autoUpdateTime"`
	ScheduleCopyDeletedAt gorm.DeletedAt `json:"schedule_copy_deleted_at,omitempty" gorm:"column:schedule_copy_deleted_at;index"`
}

func (ScheduleCopyModel) TableName() string { return "schedule_copies" }

func (s *ScheduleCopyModel) BeforeCreate(tx *gorm.DB) error {
	if s.ScheduleCopyID == uuid.Nil {
		s.ScheduleCopyID = uuid.New()
	}
	return nil
}
