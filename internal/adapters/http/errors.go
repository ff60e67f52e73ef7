package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/localhub/localhub/internal/core/domain"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: invalid_input, not_found, upstream_error, internal_error
	Message   string `json:"message"` // Human-readable message
	Field     string `json:"field,omitempty"`
	Upstream  string `json:"upstream_status,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, 400, "bad_request", msg)
}

// errNotFound returns a 404 error.
func errNotFound(c *fiber.Ctx, msg string) error {
	return newError(c, 404, "not_found", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, 500, "internal_error", msg)
}

// mapDomainError translates a core error into its wire shape. The taxonomy
// is preserved: not-found outcomes are 404, invalid input is 400 with the
// offending field, upstream failures are 502 with the provider status
// attached, and anything else is a 500.
func mapDomainError(c *fiber.Ctx, err error) error {
	reqID, _ := c.Locals("requestid").(string)

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(400).JSON(APIError{
			Status:    400,
			Code:      "invalid_input",
			Message:   ve.Message,
			Field:     ve.Field,
			RequestID: reqID,
		})
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(404).JSON(APIError{
			Status:    404,
			Code:      "not_found",
			Message:   nf.Error(),
			RequestID: reqID,
		})
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return c.Status(502).JSON(APIError{
			Status:    502,
			Code:      "upstream_error",
			Message:   ue.Message,
			Upstream:  ue.Status,
			RequestID: reqID,
		})
	}

	return errInternal(c, err.Error())
}
