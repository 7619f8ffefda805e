// file: internals/features/school/timetable/timings/controller/schedule_timing_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "schoolku_backend/internals/features/school/timetable/timings/dto"
	m "schoolku_backend/internals/features/school/timetable/timings/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ScheduleTimingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleTimingController {
	return &ScheduleTimingController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Get (per school, whole week or one day)
   ========================= */

func (ctl *ScheduleTimingController) Get(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.ScheduleTimingModel
	if err := ctl.DB.Where("schedule_timing_school_id = ?", schoolID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// absence means "no schedule configured", not an error
			return helper.Success(c, "OK", nil)
		}
		return helper.WritePGError(c, err)
	}

	if dayCode := strings.TrimSpace(c.Query("day")); dayCode != "" {
		periods, err := row.DayPeriods(dayCode)
		if err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if periods == nil {
			periods = []m.PeriodDef{}
		}
		return helper.Success(c, "OK", fiber.Map{"day": dayCode, "periods": periods})
	}

	resp, err := d.NewScheduleTimingResponse(&row)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", resp)
}

/* =========================
   Upsert (whole week document)
   ========================= */

func (ctl *ScheduleTimingController) Upsert(c *fiber.Ctx) error {
	var req d.UpsertScheduleTimingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.ValidationError(c, err)
		}
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	schoolID, err := req.SchoolID()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	model := m.ScheduleTimingModel{ScheduleTimingSchoolID: schoolID}
	if err := model.EncodeWeek(req.ToWeek()); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// one timing document per school
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "schedule_timing_school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"schedule_timing_week", "schedule_timing_updated_at"}),
	}).Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var saved m.ScheduleTimingModel
	if err := ctl.DB.Where("schedule_timing_school_id = ?", schoolID).First(&saved).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	resp, err := d.NewScheduleTimingResponse(&saved)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Timings saved", resp)
}
