// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	d "schoolku_backend/internals/features/users/auth/dto"
	m "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =========================
   Login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	err := ctl.DB.
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "Account is disabled")
	}
	if !user.CheckPassword(req.Password) {
		return helper.JsonError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, expiresAt, err := issueAccessToken(&user)
	if err != nil {
		log.Printf("[Auth.Login] sign token: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login successful", d.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        d.NewUserResponse(&user),
	})
}

/* =========================
   Logout
   ========================= */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if helper.GetRawAccessToken(c) == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "No active session")
	}

	// expire the cookie; bearer clients just drop the token
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logged out", nil)
}

/* =========================
   Me
   ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", d.NewUserResponse(&user))
}

func issueAccessToken(user *m.UserModel) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.UserSchoolID != nil {
		claims["school_id"] = user.UserSchoolID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
