// file: internals/features/school/timetable/schedules/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/school/timetable/assignments/model"
	"schoolku_backend/internals/features/school/timetable/schedules/dto"
	m "schoolku_backend/internals/features/school/timetable/schedules/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

/* =======================================================
   Conflict check

   A slot is double-booked when another row in the same copy occupies the
   same period code with the same classroom or the same teacher. The
   response names which dimension clashed so the client can explain it.
   ======================================================= */

type scheduleConflict struct {
	Dimension          string    `json:"dimension"` // "classroom" | "teacher"
	ScheduleID         uuid.UUID `json:"schedule_id"`
	SchedulePeriodCode string    `json:"schedule_period_code"`
}

func (ctl *ScheduleController) findConflict(tx *gorm.DB, schoolID, copyID, assignmentID uuid.UUID, periodCode string, excludeScheduleID uuid.UUID) (*scheduleConflict, error) {
	// The assignment must belong to the same school as the schedule row.
	var target assignmentModel.AssignmentModel
	if err := tx.
		Where("assignment_id = ? AND assignment_school_id = ?", assignmentID, schoolID).
		First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "assignment not found")
		}
		return nil, err
	}

	type hit struct {
		ScheduleID         uuid.UUID
		SchedulePeriodCode string
		ClassroomID        uuid.UUID
		TeacherID          uuid.UUID
	}
	var hits []hit
	q := tx.Table("schedules AS s").
		Select("s.schedule_id, s.schedule_period_code, cst.assignment_classroom_id AS classroom_id, cst.assignment_teacher_id AS teacher_id").
		Joins("JOIN classroom_subject_teachers AS cst ON cst.assignment_id = s.schedule_assignment_id AND cst.assignment_deleted_at IS NULL").
		Where("s.schedule_copy_id = ? AND s.schedule_period_code = ? AND s.schedule_is_active = ? AND s.schedule_deleted_at IS NULL",
			copyID, periodCode, true).
		Where("cst.assignment_classroom_id = ? OR cst.assignment_teacher_id = ?",
			target.AssignmentClassroomID, target.AssignmentTeacherID)
	if excludeScheduleID != uuid.Nil {
		q = q.Where("s.schedule_id <> ?", excludeScheduleID)
	}
	if err := q.Scan(&hits).Error; err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	h := hits[0]
	dim := "teacher"
	if h.ClassroomID == target.AssignmentClassroomID {
		dim = "classroom"
	}
	return &scheduleConflict{
		Dimension:          dim,
		ScheduleID:         h.ScheduleID,
		SchedulePeriodCode: h.SchedulePeriodCode,
	}, nil
}

/* =======================================================
   GET /api/a/schedule-copies/:copy_id/schedules
   ======================================================= */

func (ctl *ScheduleController) ListByCopy(c *fiber.Ctx) error {
	copyID, err := parseUUIDParam(c, "copy_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var cp m.ScheduleCopyModel
	if err := ctl.DB.Where("schedule_copy_id = ?", copyID).First(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "schedule copy not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, cp.ScheduleCopySchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []m.ScheduleModel
	if err := ctl.DB.
		Preload("Assignment").
		Preload("Assignment.Classroom").
		Preload("Assignment.Subject").
		Preload("Assignment.Teacher").
		Where("schedule_copy_id = ?", copyID).
		Order("schedule_period_code ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]dto.ScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewScheduleResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"schedule_copy": dto.NewScheduleCopyResponse(&cp),
		"schedules":     out,
	})
}

/* =======================================================
   POST /api/a/schedules
   ======================================================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ScheduleModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid id in request body")
	}
	if err := helperAuth.EnsureSchoolScope(c, row.ScheduleSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cp m.ScheduleCopyModel
		if err := tx.
			Where("schedule_copy_id = ? AND schedule_copy_school_id = ?", row.ScheduleCopyID, row.ScheduleSchoolID).
			First(&cp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "schedule copy not found")
			}
			return err
		}

		conflict, err := ctl.findConflict(tx, row.ScheduleSchoolID, row.ScheduleCopyID, row.ScheduleAssignmentID, row.SchedulePeriodCode, uuid.Nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return &conflictError{conflict: conflict}
		}
		return tx.Create(&row).Error
	})
	if txErr != nil {
		return ctl.writeScheduleError(c, txErr)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "schedule created", dto.NewScheduleResponse(&row))
}

/* =======================================================
   PATCH /api/a/schedules/:id
   ======================================================= */

func (ctl *ScheduleController) Patch(c *fiber.Ctx) error {
	scheduleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.PatchScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ScheduleModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", scheduleID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "schedule not found")
			}
			return err
		}
		if err := helperAuth.EnsureSchoolScope(c, row.ScheduleSchoolID); err != nil {
			return err
		}

		target, err := req.TargetPeriodCode(row.SchedulePeriodCode)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid period code")
		}

		nextActive := row.ScheduleIsActive
		if req.ScheduleIsActive != nil {
			nextActive = *req.ScheduleIsActive
		}
		if nextActive && (target != row.SchedulePeriodCode || !row.ScheduleIsActive) {
			conflict, err := ctl.findConflict(tx, row.ScheduleSchoolID, row.ScheduleCopyID, row.ScheduleAssignmentID, target, row.ScheduleID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &conflictError{conflict: conflict}
			}
		}

		updates := map[string]any{
			"schedule_period_code": target,
			"schedule_is_active":   nextActive,
		}
		if req.SchedulePlace != nil {
			updates["schedule_place"] = *req.SchedulePlace
		}
		if err := tx.Model(&row).Updates(updates).Error; err != nil {
			return err
		}

		return tx.
			Preload("Assignment").
			Preload("Assignment.Classroom").
			Preload("Assignment.Subject").
			Preload("Assignment.Teacher").
			Where("schedule_id = ?", row.ScheduleID).
			First(&row).Error
	})
	if txErr != nil {
		return ctl.writeScheduleError(c, txErr)
	}

	return helper.Success(c, "schedule updated", dto.NewScheduleResponse(&row))
}

/* =======================================================
   DELETE /api/a/schedules/:id
   ======================================================= */

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	scheduleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.ScheduleModel
	if err := ctl.DB.Where("schedule_id = ?", scheduleID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "schedule not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, row.ScheduleSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "schedule deleted", fiber.Map{"schedule_id": row.ScheduleID})
}

/* =======================================================
   Error plumbing
   ======================================================= */

type conflictError struct {
	conflict *scheduleConflict
}

func (e *conflictError) Error() string { return "schedule slot already taken" }

func (ctl *ScheduleController) writeScheduleError(c *fiber.Ctx, err error) error {
	var ce *conflictError
	if errors.As(err, &ce) {
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "schedule slot already taken", ce.conflict)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.FromFiberError(c, fe)
	}
	return helper.WritePGError(c, err)
}
