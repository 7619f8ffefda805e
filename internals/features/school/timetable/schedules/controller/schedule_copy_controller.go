// file: internals/features/school/timetable/schedules/controller/schedule_copy_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/timetable/schedules/dto"
	m "schoolku_backend/internals/features/school/timetable/schedules/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ScheduleCopyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleCopyController(db *gorm.DB, v *validator.Validate) *ScheduleCopyController {
	return &ScheduleCopyController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

/* =======================================================
   GET /api/a/schools/:school_id/schedule-copies
   ======================================================= */

func (ctl *ScheduleCopyController) ListBySchool(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.Model(&m.ScheduleCopyModel{}).
		Where("schedule_copy_school_id = ?", schoolID)
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ScheduleCopyModel
	if err := q.
		Order("schedule_copy_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]dto.ScheduleCopyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewScheduleCopyResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"schedule_copies": out,
		"pagination":      helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage),
	})
}

/* =======================================================
   POST /api/a/schedule-copies
   ======================================================= */

func (ctl *ScheduleCopyController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ScheduleCopyModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid school id")
	}
	if err := helperAuth.EnsureSchoolScope(c, row.ScheduleCopySchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "schedule copy created", dto.NewScheduleCopyResponse(&row))
}

/* =======================================================
   POST /api/a/schedule-copies/:id/activate

   Deactivates every other copy of the same school and flips the target
   on, in one transaction, so at most one copy is ever active.
   ======================================================= */

func (ctl *ScheduleCopyController) Activate(c *fiber.Ctx) error {
	copyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var activated m.ScheduleCopyModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var row m.ScheduleCopyModel
		if err := tx.
			Where("schedule_copy_id = ?", copyID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "schedule copy not found")
			}
			return err
		}
		if err := helperAuth.EnsureSchoolScope(c, row.ScheduleCopySchoolID); err != nil {
			return err
		}

		if err := tx.Model(&m.ScheduleCopyModel{}).
			Where("schedule_copy_school_id = ? AND schedule_copy_id <> ?", row.ScheduleCopySchoolID, row.ScheduleCopyID).
			Update("schedule_copy_is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&m.ScheduleCopyModel{}).
			Where("schedule_copy_id = ?", row.ScheduleCopyID).
			Update("schedule_copy_is_active", true).Error; err != nil {
			return err
		}

		row.ScheduleCopyIsActive = true
		activated = row
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.FromFiberError(c, fe)
		}
		return helper.WritePGError(c, txErr)
	}

	return helper.Success(c, "schedule copy activated", dto.NewScheduleCopyResponse(&activated))
}

/* =======================================================
   DELETE /api/a/schedule-copies/:id
   ======================================================= */

func (ctl *ScheduleCopyController) Delete(c *fiber.Ctx) error {
	copyID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.ScheduleCopyModel
	if err := ctl.DB.Where("schedule_copy_id = ?", copyID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "schedule copy not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, row.ScheduleCopySchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if row.ScheduleCopyIsActive {
		return helper.Error(c, fiber.StatusConflict, "cannot delete the active schedule copy")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("schedule_copy_id = ?", row.ScheduleCopyID).
			Delete(&m.ScheduleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if txErr != nil {
		return helper.WritePGError(c, txErr)
	}
	return helper.Success(c, "schedule copy deleted", fiber.Map{"schedule_copy_id": row.ScheduleCopyID})
}
