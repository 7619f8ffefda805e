// file: internals/features/school/timetable/assignments/controller/assignment_controller.go
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

	d "schoolku_backend/internals/features/school/timetable/assignments/dto"
	m "schoolku_backend/internals/features/school/timetable/assignments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (per school, filterable by teacher/classroom)
   ========================= */

func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&m.AssignmentModel{}).Where("assignment_school_id = ?", schoolID)
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		if _, err := uuid.Parse(tid); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id invalid")
		}
		db = db.Where("assignment_teacher_id = ?", tid)
	}
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		if _, err := uuid.Parse(cid); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "classroom_id invalid")
		}
		db = db.Where("assignment_classroom_id = ?", cid)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.AssignmentModel
	if err := db.
		Preload("Classroom").Preload("Subject").Preload("Teacher").
		Order("assignment_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewAssignmentResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.Success(c, "OK", fiber.Map{"items": out, "pagination": pg})
}

/* =========================
   Create
   ========================= */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req d.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var model m.AssignmentModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, model.AssignmentSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Assignment created", d.NewAssignmentResponse(&model))
}

/* =========================
   BulkCreate (import): all-or-nothing
   ========================= */

func (ctl *AssignmentController) BulkCreate(c *fiber.Ctx) error {
	var req d.BulkCreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	models := make([]m.AssignmentModel, 0, len(req.Items))
	for i := range req.Items {
		var model m.AssignmentModel
		if err := req.Items[i].ApplyToModel(&model); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("items[%d]: %v", i, err))
		}
		if err := helperAuth.EnsureSchoolScope(c, model.AssignmentSchoolID); err != nil {
			return helper.FromFiberError(c, err)
		}
		models = append(models, model)
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.AssignmentResponse, 0, len(models))
	for i := range models {
		out = append(out, d.NewAssignmentResponse(&models[i]))
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Assignments imported", out)
}

/* =========================
   Patch / Delete
   ========================= */

func (ctl *AssignmentController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.AssignmentModel
	if err := ctl.DB.Where("assignment_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.AssignmentSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.PatchAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyPatch(&existing)

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Assignment updated", d.NewAssignmentResponse(&existing))
}

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.AssignmentModel
	if err := ctl.DB.Where("assignment_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.AssignmentSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Assignment deleted", fiber.Map{"assignment_id": id})
}
