// file: internals/features/school/academics/classrooms/controller/classroom_controller.go
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

	d "schoolku_backend/internals/features/school/academics/classrooms/dto"
	m "schoolku_backend/internals/features/school/academics/classrooms/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassroomController {
	return &ClassroomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List (per school)
   ========================= */

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&m.ClassroomModel{}).Where("classroom_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("classroom_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassroomModel
	if err := db.Order("classroom_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.ClassroomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewClassroomResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.Success(c, "OK", fiber.Map{"items": out, "pagination": pg})
}

/* =========================
   Create
   ========================= */

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req d.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var model m.ClassroomModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, model.ClassroomSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Classroom created", d.NewClassroomResponse(&model))
}

/* =========================
   Patch
   ========================= */

func (ctl *ClassroomController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassroomModel
	if err := ctl.DB.Where("classroom_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "classroom not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.ClassroomSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.PatchClassroomRequest
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
	return helper.Success(c, "Classroom updated", d.NewClassroomResponse(&existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassroomModel
	if err := ctl.DB.Where("classroom_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "classroom not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.ClassroomSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Classroom deleted", fiber.Map{"classroom_id": id})
}
