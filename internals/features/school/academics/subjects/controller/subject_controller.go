// file: internals/features/school/academics/subjects/controller/subject_controller.go
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

	d "schoolku_backend/internals/features/school/academics/subjects/dto"
	m "schoolku_backend/internals/features/school/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := parseUUIDParam(c, "school_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 50, 200)

	db := ctl.DB.Model(&m.SubjectModel{}).Where("subject_school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("subject_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.SubjectModel
	if err := db.Order("subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewSubjectResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pg.Count = len(out)
	return helper.Success(c, "OK", fiber.Map{"items": out, "pagination": pg})
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var model m.SubjectModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := helperAuth.EnsureSchoolScope(c, model.SubjectSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Subject created", d.NewSubjectResponse(&model))
}

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.SubjectSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.PatchSubjectRequest
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
	return helper.Success(c, "Subject updated", d.NewSubjectResponse(&existing))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject not found")
		}
		return helper.WritePGError(c, err)
	}
	if err := helperAuth.EnsureSchoolScope(c, existing.SubjectSchoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.Success(c, "Subject deleted", fiber.Map{"subject_id": id})
}
