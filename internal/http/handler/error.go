package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"menuapi/internal/http/middleware"
	"menuapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
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

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Not-found messages keep the lowercase entity phrasing clients match on.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMenuNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "menu not found")
	case errors.Is(err, service.ErrSubMenuNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "submenu not found")
	case errors.Is(err, service.ErrDishNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "dish not found")
	case errors.Is(err, service.ErrNoImage):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "dish image not found")
	case errors.Is(err, service.ErrSubMenuConflict):
		return writeError(c, fiber.StatusBadRequest, "TITLE_CONFLICT", "submenu already belongs to another menu")
	case errors.Is(err, service.ErrDishConflict):
		return writeError(c, fiber.StatusBadRequest, "TITLE_CONFLICT", "dish already belongs to another submenu")
	case errors.Is(err, service.ErrTitleRequired):
		return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
	case errors.Is(err, service.ErrInvalidPrice):
		return writeError(c, fiber.StatusBadRequest, "INVALID_PRICE", "price must be a non-negative decimal")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
