// file: internals/features/school/timetable/assignments/controller/assignment_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
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

	classroomModel "schoolku_backend/internals/features/school/academics/classrooms/model"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/academics/teachers/model"
	m "schoolku_backend/internals/features/school/timetable/assignments/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func setupAssignmentTest(t *testing.T, schoolID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&classroomModel.ClassroomModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&m.AssignmentModel{},
	))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, "admin")
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	})
	ctl := New(db, validator.New())
	app.Get("/schools/:school_id/assignments", ctl.List)
	return app, db
}

func getAssignments(t *testing.T, app *fiber.App, schoolID uuid.UUID) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/schools/"+schoolID.String()+"/assignments", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func TestListAssignments_ForeignSchoolForbidden(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupAssignmentTest(t, schoolID)

	foreign := uuid.New()
	require.NoError(t, db.Create(&m.AssignmentModel{
		AssignmentSchoolID:    foreign,
		AssignmentClassroomID: uuid.New(),
		AssignmentSubjectID:   uuid.New(),
		AssignmentTeacherID:   uuid.New(),
		AssignmentWeeklyQuota: 2,
	}).Error)

	resp, body := getAssignments(t, app, foreign)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Nil(t, body["data"])
}

func TestListAssignments_OwnSchoolAllowed(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupAssignmentTest(t, schoolID)

	require.NoError(t, db.Create(&m.AssignmentModel{
		AssignmentSchoolID:    schoolID,
		AssignmentClassroomID: uuid.New(),
		AssignmentSubjectID:   uuid.New(),
		AssignmentTeacherID:   uuid.New(),
		AssignmentWeeklyQuota: 2,
	}).Error)

	resp, body := getAssignments(t, app, schoolID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
	data := body["data"].(map[string]any)
	assert.Len(t, data["items"], 1)
}
