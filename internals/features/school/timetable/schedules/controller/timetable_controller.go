// file: internals/features/school/timetable/schedules/controller/timetable_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "schoolku_backend/internals/features/school/academics/teachers/model"
	m "schoolku_backend/internals/features/school/timetable/schedules/model"
	"schoolku_backend/internals/features/school/timetable/service"
	timingModel "schoolku_backend/internals/features/school/timetable/timings/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// TimetableController serves the teacher-facing read side: the logged-in
// user's day and week views, rendered from the active copy.
type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

/* =======================================================
   Lookup helpers
   ======================================================= */

func (ctl *TimetableController) resolveTeacher(c *fiber.Ctx, schoolID uuid.UUID) (*teacherModel.TeacherModel, error) {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	var t teacherModel.TeacherModel
	if err := ctl.DB.
		Where("teacher_user_id = ? AND teacher_school_id = ?", userID, schoolID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "teacher record not found")
		}
		return nil, err
	}
	return &t, nil
}

func (ctl *TimetableController) resolveActiveCopy(schoolID uuid.UUID) (*m.ScheduleCopyModel, error) {
	var cp m.ScheduleCopyModel
	if err := ctl.DB.
		Where("schedule_copy_school_id = ? AND schedule_copy_is_active = ?", schoolID, true).
		First(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "no active schedule copy")
		}
		return nil, err
	}
	return &cp, nil
}

// loadLessons pulls the teacher's active rows for one day of the copy and
// flattens them for the formatter. Rows whose assignment lost its subject or
// classroom still render, just with empty names.
func (ctl *TimetableController) loadLessons(copyID, teacherID uuid.UUID, dayCode string) ([]service.Lesson, error) {
	var rows []m.ScheduleModel
	if err := ctl.DB.
		Preload("Assignment").
		Preload("Assignment.Subject").
		Preload("Assignment.Classroom").
		Joins("JOIN classroom_subject_teachers AS cst ON cst.assignment_id = schedules.schedule_assignment_id").
		Where("schedules.schedule_copy_id = ? AND schedules.schedule_is_active = ?", copyID, true).
		Where("cst.assignment_teacher_id = ? AND cst.assignment_deleted_at IS NULL", teacherID).
		Where("schedules.schedule_period_code LIKE ?", dayCode+"p%").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	lessons := make([]service.Lesson, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		l := service.Lesson{
			ScheduleID: r.ScheduleID,
			PeriodCode: r.SchedulePeriodCode,
		}
		if a := r.Assignment; a != nil {
			l.Color = a.AssignmentColor
			l.ColorSecondary = a.AssignmentColorSecondary
			if a.Subject != nil {
				l.SubjectName = a.Subject.SubjectName
			}
			if a.Classroom != nil {
				l.ClassroomName = a.Classroom.ClassroomName
			}
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func (ctl *TimetableController) loadTiming(schoolID uuid.UUID) (*timingModel.ScheduleTimingModel, timingModel.WeekTimings, error) {
	var timing timingModel.ScheduleTimingModel
	if err := ctl.DB.
		Where("schedule_timing_school_id = ?", schoolID).
		First(&timing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	week, err := timing.DecodeWeek()
	if err != nil {
		return nil, nil, err
	}
	return &timing, week, nil
}

/* =======================================================
   GET /api/u/schools/:school_id/timetable?day=dN
   ======================================================= */

func (ctl *TimetableController) MyDay(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	dayCode := strings.TrimSpace(c.Query("day"))
	if dayCode == "" {
		dayCode = service.TodayDayCode(time.Now())
	}
	if !service.ValidDayCode(dayCode) {
		return helper.Error(c, fiber.StatusBadRequest, "invalid day code")
	}

	teacher, err := ctl.resolveTeacher(c, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := ctl.resolveActiveCopy(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	_, week, err := ctl.loadTiming(schoolID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var defs []timingModel.PeriodDef
	if week != nil {
		defs = week[dayCode]
	}

	events := []service.Event{}
	if len(defs) > 0 {
		lessons, err := ctl.loadLessons(cp.ScheduleCopyID, teacher.TeacherID, dayCode)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		events = service.BuildDayEvents(defs, lessons)
	}

	var timings any
	if defs != nil {
		timings = defs
	}
	return helper.Success(c, "OK", fiber.Map{
		"day":              dayCode,
		"schedule_copy_id": cp.ScheduleCopyID,
		"schedule":         events,
		"timings":          timings,
	})
}

/* =======================================================
   GET /api/u/schools/:school_id/timetable/week
   ======================================================= */

func (ctl *TimetableController) MyWeek(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	teacher, err := ctl.resolveTeacher(c, schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := ctl.resolveActiveCopy(schoolID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	_, week, err := ctl.loadTiming(schoolID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	days := make(map[string][]service.Event, len(service.DayCodes))
	for _, dayCode := range service.DayCodes {
		var defs []timingModel.PeriodDef
		if week != nil {
			defs = week[dayCode]
		}
		if len(defs) == 0 {
			days[dayCode] = []service.Event{}
			continue
		}
		lessons, err := ctl.loadLessons(cp.ScheduleCopyID, teacher.TeacherID, dayCode)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		days[dayCode] = service.BuildDayEvents(defs, lessons)
	}

	return helper.Success(c, "OK", fiber.Map{
		"schedule_copy_id": cp.ScheduleCopyID,
		"days":             days,
	})
}
