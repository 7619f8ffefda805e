// file: internals/features/school/timetable/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/school/timetable/assignments/model"
)

// ScheduleModel places one assignment (CST) into one day/period slot of a
// copy. period_code encodes day+period, e.g. "d1p3".
type ScheduleModel struct {
	ScheduleID       uuid.UUID `json:"schedule_id" gorm:"type:uuid;primaryKey;column:schedule_id"`
	ScheduleSchoolID uuid.UUID `json:"schedule_school_id" gorm:"type:uuid;not null;index;column:schedule_school_id"`

	ScheduleCopyID       uuid.UUID `json:"schedule_copy_id" gorm:"type:uuid;not null;index;column:schedule_copy_id"`
	ScheduleAssignmentID uuid.UUID `json:"schedule_assignment_id" gorm:"type:uuid;not null;index;column:schedule_assignment_id"`

	// (copy, assignment, period) is expected unique; double booking of the
	// same classroom or teacher in a slot is rejected at write time.
	SchedulePeriodCode string  `json:"schedule_period_code" gorm:"type:varchar(10);not null;index;column:schedule_period_code"`
	ScheduleIsActive   bool    `json:"schedule_is_active" gorm:"not null;default:true;column:schedule_is_active"`
	SchedulePlace      *string `json:"schedule_place,omitempty" gorm:"type:text;column:schedule_place"`

	Assignment *assignmentModel.AssignmentModel `json:"assignment,omitempty" gorm:"foreignKey:ScheduleAssignmentID;references:AssignmentID"`

	ScheduleCreatedAt time.Time      `json:"schedule_created_at" gorm:"column:schedule_created_at;autoCreateTime"`
	ScheduleUpdatedAt time.Time      `json:"schedule_updated_at" gorm:"column:schedule_updated_at;autoUpdateTime"`
	ScheduleDeletedAt gorm.DeletedAt `json:"schedule_deleted_at,omitempty" gorm:"column:schedule_deleted_at;index"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (s *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ScheduleID == uuid.Nil {
		s.ScheduleID = uuid.New()
	}
	return nil
}
