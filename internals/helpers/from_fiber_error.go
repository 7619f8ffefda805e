package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converts an error returned from a Transaction (usually a
// *fiber.Error) into the shared JSON error envelope. Anything else falls back
// to a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
