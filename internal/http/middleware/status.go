package middleware

import "github.com/gofiber/fiber/v2"

// responseStatus returns the status the client will receive. Errors returned down the
// chain are only rendered by the global ErrorHandler after every middleware has unwound.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if se, ok := err.(interface{ StatusCode() int }); ok {
		return se.StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
