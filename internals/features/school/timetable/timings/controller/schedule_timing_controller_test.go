// file: internals/features/school/timetable/timings/controller/schedule_timing_controller_test.go
package controller

import (
	"bytes"
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

	m "schoolku_backend/internals/features/school/timetable/timings/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func setupTimingTest(t *testing.T, schoolID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&m.ScheduleTimingModel{}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, uuid.NewString())
		c.Locals(helperAuth.LocRole, "admin")
		c.Locals(helperAuth.LocSchoolID, schoolID.String())
		return c.Next()
	})

	ctl := New(db, validator.New())
	app.Get("/schools/:school_id/schedule-timings", ctl.Get)
	app.Put("/schools/:school_id/schedule-timings", ctl.Upsert)
	return app, db
}

func timingRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func weekPayload(schoolID uuid.UUID) fiber.Map {
	return fiber.Map{
		"schedule_timing_school_id": schoolID.String(),
		"week": fiber.Map{
			"d1": []fiber.Map{
				{
					"period_code": "d1p1",
					"label":       "Period 1",
					"timeSlots":   []fiber.Map{{"from": "07:30", "to": "08:15"}},
				},
				{
					"period_code": "d1p2",
					"label":       "Morning Break",
					"timeSlots":   []fiber.Map{{"from": "08:15", "to": "08:30"}},
				},
			},
		},
	}
}

func TestUpsertTiming_CreatesThenReplaces(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupTimingTest(t, schoolID)
	path := "/schools/" + schoolID.String() + "/schedule-timings"

	resp, body := timingRequest(t, app, fiber.MethodPut, path, weekPayload(schoolID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	// second upsert replaces the document instead of inserting another
	payload := weekPayload(schoolID)
	payload["week"] = fiber.Map{
		"d2": []fiber.Map{
			{
				"period_code": "d2p1",
				"label":       "Period 1",
				"timeSlots":   []fiber.Map{{"from": "08:00", "to": "08:45"}},
			},
		},
	}
	resp, body = timingRequest(t, app, fiber.MethodPut, path, payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	var count int64
	require.NoError(t, db.Model(&m.ScheduleTimingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var row m.ScheduleTimingModel
	require.NoError(t, db.Where("schedule_timing_school_id = ?", schoolID).First(&row).Error)
	week, err := row.DecodeWeek()
	require.NoError(t, err)
	assert.NotContains(t, week, "d1")
	require.Contains(t, week, "d2")
	// legacy-free write path stores explicit kinds
	assert.Equal(t, m.PeriodLesson, week["d2"][0].Kind)
}

func TestGetTiming_ForeignSchoolForbidden(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupTimingTest(t, schoolID)

	// the document of another school must not leak to this token
	foreign := uuid.New()
	doc := m.ScheduleTimingModel{ScheduleTimingSchoolID: foreign}
	require.NoError(t, doc.EncodeWeek(m.WeekTimings{
		"d1": {{PeriodCode: "d1p1", Label: "Period 1", Kind: m.PeriodLesson, TimeSlots: []m.TimeSlot{{From: "07:30", To: "08:15"}}}},
	}))
	require.NoError(t, db.Create(&doc).Error)

	resp, body := timingRequest(t, app, fiber.MethodGet,
		"/schools/"+foreign.String()+"/schedule-timings", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Nil(t, body["data"])
}

func TestUpsertTiming_ScopeMismatchForbidden(t *testing.T) {
	schoolID := uuid.New()
	app, _ := setupTimingTest(t, schoolID)

	foreign := uuid.New()
	resp, _ := timingRequest(t, app, fiber.MethodPut,
		"/schools/"+foreign.String()+"/schedule-timings", weekPayload(foreign))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpsertTiming_RejectsBadWeek(t *testing.T) {
	schoolID := uuid.New()
	app, _ := setupTimingTest(t, schoolID)
	path := "/schools/" + schoolID.String() + "/schedule-timings"

	payload := weekPayload(schoolID)
	payload["week"] = fiber.Map{
		"d1": []fiber.Map{
			{
				"period_code": "d2p1", // wrong day
				"label":       "Period 1",
				"timeSlots":   []fiber.Map{{"from": "07:30", "to": "08:15"}},
			},
		},
	}
	resp, _ := timingRequest(t, app, fiber.MethodPut, path, payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTiming_MissingDocumentIsNotAnError(t *testing.T) {
	schoolID := uuid.New()
	app, _ := setupTimingTest(t, schoolID)

	resp, body := timingRequest(t, app, fiber.MethodGet,
		"/schools/"+schoolID.String()+"/schedule-timings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, body["data"])
}

func TestGetTiming_SingleDayView(t *testing.T) {
	schoolID := uuid.New()
	app, _ := setupTimingTest(t, schoolID)
	path := "/schools/" + schoolID.String() + "/schedule-timings"

	resp, _ := timingRequest(t, app, fiber.MethodPut, path, weekPayload(schoolID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := timingRequest(t, app, fiber.MethodGet, path+"?day=d1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "d1", data["day"])
	assert.Len(t, data["periods"], 2)

	// a day with no configured periods comes back empty, not missing
	resp, body = timingRequest(t, app, fiber.MethodGet, path+"?day=d5", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	assert.Empty(t, data["periods"])
}
