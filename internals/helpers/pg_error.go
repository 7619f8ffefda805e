// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Matches pgconn.PgError without importing the driver directly.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError translates common Postgres SQLSTATEs into safe client messages.
// 23505 = unique_violation, 23503 = foreign_key_violation, 23P01 = exclusion_violation.
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Schedule clash: time range overlap."
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
