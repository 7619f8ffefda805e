// file: internals/features/school/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel maps the teachers table. TeacherUserID links the staff record
// to a login account; requests resolve "my timetable" through it.
type TeacherModel struct {
	TeacherID       uuid.UUID  `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id"`
	TeacherSchoolID uuid.UUID  `json:"teacher_school_id" gorm:"type:uuid;not null;index;column:teacher_school_id"`
	TeacherUserID   *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"type:uuid;index;column:teacher_user_id"`

	TeacherName  string  `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`
	TeacherEmail *string `json:"teacher_email,omitempty" gorm:"type:text;column:teacher_email"`
	TeacherCode  *string `json:"teacher_code,omitempty" gorm:"type:varchar(20);column:teacher_code"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	return nil
}
