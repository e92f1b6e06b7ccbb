package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"heroapi/internal/http/middleware"
)

// APIError is a typed HTTP failure. Handlers return it and ErrorHandler renders it, so no
// handler writes an error body itself.
type APIError struct {
	Status  int
	Code    string
	Message string
	// Details are merged into the top level of the response body.
	Details map[string]any
}

// NewAPIError builds an APIError without details.
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode lets middleware report the final status before ErrorHandler runs.
func (e *APIError) StatusCode() int {
	return e.Status
}

// With returns a copy of e carrying an extra detail field.
func (e *APIError) With(key string, value any) *APIError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &APIError{Status: e.Status, Code: e.Code, Message: e.Message, Details: details}
}

// errSuperheroNotFound is the 404 raised by every slug-addressed route.
func errSuperheroNotFound(slug string) *APIError {
	return NewAPIError(fiber.StatusNotFound, "NOT_FOUND", "superhero not found").With("slug", slug)
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes the standardized JSON error body:
//
//	{"request_id": "...", "code": "NOT_FOUND", "message": "superhero not found", "slug": "..."}
//
// Detail keys never override request_id, code or message.
func writeError(c *fiber.Ctx, e *APIError) error {
	body := fiber.Map{}
	for k, v := range e.Details {
		body[k] = v
	}
	body["request_id"] = requestIDFromCtx(c)
	body["code"] = e.Code
	body["message"] = e.Message
	return c.Status(e.Status).JSON(body)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Unclassified errors become a 500 without leaking internal details.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return writeError(c, apiErr)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, NewAPIError(status, "BAD_REQUEST", "bad request"))
		case fiber.StatusNotFound:
			return writeError(c, NewAPIError(status, "NOT_FOUND", "resource not found"))
		case fiber.StatusMethodNotAllowed:
			return writeError(c, NewAPIError(status, "METHOD_NOT_ALLOWED", "method not allowed"))
		default:
			middleware.GetLogger(c).Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("unhandled error")
			return writeError(c, NewAPIError(fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"))
		}
	}
}
