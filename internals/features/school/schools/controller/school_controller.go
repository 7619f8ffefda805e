// file: internals/features/school/schools/controller/school_controller.go
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

	d "schoolku_backend/internals/features/school/schools/dto"
	m "schoolku_backend/internals/features/school/schools/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List
   ========================= */

func (ctl *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.SchoolModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("school_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.SchoolModel
	if err := db.Order("school_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSchoolResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.Success(c, "OK", fiber.Map{"items": out, "pagination": pg})
}

/* =========================
   GetByID
   ========================= */

func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.SchoolModel
	if err := ctl.DB.Where("school_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "school not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "OK", d.NewSchoolResponse(&row))
}

/* =========================
   Create
   ========================= */

func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req d.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var model m.SchoolModel
	req.ApplyToModel(&model)

	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "School created", d.NewSchoolResponse(&model))
}

/* =========================
   Patch
   ========================= */

func (ctl *SchoolController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	var existing m.SchoolModel
	if err := ctl.DB.Where("school_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "school not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.PatchSchoolRequest
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
	return helper.Success(c, "School updated", d.NewSchoolResponse(&existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("school_id = ?", id).Delete(&m.SchoolModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "school not found")
	}
	return helper.Success(c, "School deleted", fiber.Map{"school_id": id})
}
