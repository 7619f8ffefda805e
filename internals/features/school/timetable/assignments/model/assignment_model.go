// file: internals/features/school/timetable/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolku_backend/internals/features/school/academics/classrooms/model"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/academics/teachers/model"
)

// AssignmentModel is the CST unit: one classroom, one subject, one teacher,
// plus the weekly quota of periods and the two UI colors.
type AssignmentModel struct {
	AssignmentID       uuid.UUID `json:"assignment_id" gorm:"type:uuid;primaryKey;column:assignment_id"`
	AssignmentSchoolID uuid.UUID `json:"assignment_school_id" gorm:"type:uuid;not null;index;column:assignment_school_id"`

	AssignmentClassroomID uuid.UUID `json:"assignment_classroom_id" gorm:"type:uuid;not null;index;column:assignment_classroom_id"`
	AssignmentSubjectID   uuid.UUID `json:"assignment_subject_id" gorm:"type:uuid;not null;index;column:assignment_subject_id"`
	AssignmentTeacherID   uuid.UUID `json:"assignment_teacher_id" gorm:"type:uuid;not null;index;column:assignment_teacher_id"`

	AssignmentWeeklyQuota    int    `json:"assignment_weekly_quota" gorm:"not null;default:1;column:assignment_weekly_quota"`
	AssignmentColor          string `json:"assignment_color" gorm:"type:varchar(20);not null;default:'#3B82F6';column:assignment_color"`
	AssignmentColorSecondary string `json:"assignment_color_secondary" gorm:"type:varchar(20);not null;default:'#DBEAFE';column:assignment_color_secondary"`

	// Preloads
	Classroom *classroomModel.ClassroomModel `json:"classroom,omitempty" gorm:"foreignKey:AssignmentClassroomID;references:ClassroomID"`
	Subject   *subjectModel.SubjectModel     `json:"subject,omitempty" gorm:"foreignKey:AssignmentSubjectID;references:SubjectID"`
	Teacher   *teacherModel.TeacherModel     `json:"teacher,omitempty" gorm:"foreignKey:AssignmentTeacherID;references:TeacherID"`

	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;index"`
}

func (AssignmentModel) TableName() string { return "classroom_subject_teachers" }

func (a *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.AssignmentID == uuid.Nil {
		a.AssignmentID = uuid.New()
	}
	return nil
}
