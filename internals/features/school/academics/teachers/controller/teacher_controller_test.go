// file: internals/features/school/academics/teachers/controller/teacher_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/school/academics/teachers/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func setupTeacherTest(t *testing.T, schoolID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&m.TeacherModel{}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, "admin")
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	})
	ctl := New(db, validator.New())
	app.Get("/schools/:school_id/teachers", ctl.List)
	return app, db
}

func TestListTeachers_ForeignSchoolForbidden(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupTeacherTest(t, schoolID)

	foreign := uuid.New()
	require.NoError(t, db.Create(&m.TeacherModel{
		TeacherSchoolID: foreign,
		TeacherName:     "Bu Sari",
	}).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/schools/"+foreign.String()+"/teachers", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
