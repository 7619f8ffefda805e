// file: internals/features/users/auth/controller/auth_controller_test.go
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
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	m "schoolku_backend/internals/features/users/auth/model"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&m.UserModel{}))

	app := fiber.New()
	ctl := New(db, validator.New())
	app.Post("/login", ctl.Login)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, active bool) m.UserModel {
	t.Helper()
	user := m.UserModel{
		UserEmail:    email,
		UserFullName: "Bu Sari",
		UserRole:     constants.RoleTeacher,
		UserIsActive: active,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(&user).Error)
	return user
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{"email": email, "password": password}))
	req := httptest.NewRequest(fiber.MethodPost, "/login", &buf)
	req.Header.Set("Content-Type", "application/json")

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

func TestLogin_IssuesSignedToken(t *testing.T) {
	app, db := setupAuthTest(t)
	user := seedUser(t, db, "sari@sekolah.id", "rahasia123", true)

	resp, body := postLogin(t, app, "sari@sekolah.id", "rahasia123")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)

	data := body["data"].(map[string]any)
	tokenStr, _ := data["access_token"].(string)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.UserID.String(), claims["user_id"])
	assert.Equal(t, constants.RoleTeacher, claims["role"])
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	app, db := setupAuthTest(t)
	seedUser(t, db, "sari@sekolah.id", "rahasia123", true)

	resp, _ := postLogin(t, app, "Sari@Sekolah.ID", "rahasia123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_Rejections(t *testing.T) {
	app, db := setupAuthTest(t)
	seedUser(t, db, "sari@sekolah.id", "rahasia123", true)
	seedUser(t, db, "cuti@sekolah.id", "rahasia123", false)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "wrong password", email: "sari@sekolah.id", password: "salah-semua", wantStatus: fiber.StatusUnauthorized},
		{name: "unknown email", email: "nobody@sekolah.id", password: "rahasia123", wantStatus: fiber.StatusUnauthorized},
		{name: "disabled account", email: "cuti@sekolah.id", password: "rahasia123", wantStatus: fiber.StatusForbidden},
		{name: "malformed email", email: "not-an-email", password: "rahasia123", wantStatus: fiber.StatusBadRequest},
		{name: "short password", email: "sari@sekolah.id", password: "abc", wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postLogin(t, app, tt.email, tt.password)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
