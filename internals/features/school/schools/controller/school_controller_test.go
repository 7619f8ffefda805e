// file: internals/features/school/schools/controller/school_controller_test.go
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

	m "schoolku_backend/internals/features/school/schools/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func setupSchoolTest(t *testing.T, schoolID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&m.SchoolModel{}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, "admin")
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	})
	ctl := New(db, validator.New())
	app.Get("/schools/:id", ctl.GetByID)
	return app, db
}

func TestGetSchool_ForeignSchoolForbidden(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupSchoolTest(t, schoolID)

	foreign := m.SchoolModel{
		SchoolName: "SMP Lain",
		SchoolCode: uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(&foreign).Error)

	req := httptest.NewRequest(fiber.MethodGet, "/schools/"+foreign.SchoolID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetSchool_OwnSchoolAllowed(t *testing.T) {
	mine := m.SchoolModel{
		SchoolName: "SMP Harapan",
		SchoolCode: uuid.NewString()[:8],
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&m.SchoolModel{}))
	require.NoError(t, db.Create(&mine).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, "admin")
		c.Locals(helperAuth.LocSchoolID, mine.SchoolID.String())
		return c.Next()
	})
	ctl := New(db, validator.New())
	app.Get("/schools/:id", ctl.GetByID)

	req := httptest.NewRequest(fiber.MethodGet, "/schools/"+mine.SchoolID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
