// file: internals/helpers/auth/claims.go
package helperauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* ===============================
   Locals keys (set by middleware)
=================================*/

const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocSchoolID = "school_id"
)

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" invalid in token")
	}
	return id, nil
}

// GetUserID returns the authenticated user id stored by the auth middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID)
}

// GetSchoolID returns the active school scope from the token claims.
func GetSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocSchoolID)
}

func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleTeacher }

// EnsureSchoolScope rejects requests whose token scope does not cover the
// school they are acting on. Used by every school-scoped mutation.
func EnsureSchoolScope(c *fiber.Ctx, schoolID uuid.UUID) error {
	act, err := GetSchoolID(c)
	if err != nil {
		return err
	}
	if act != schoolID {
		return fiber.NewError(fiber.StatusForbidden, "school scope mismatch")
	}
	return nil
}
