package utils

import (
	"errors"

	"neoflix/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Movie with id 0 not found"`
}

// SuccessResponse sends data as the whole response body.
func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// ErrorHandler maps handler errors to ErrorBody responses. Domain errors keep
// their message; anything unexpected is logged and reported generically.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := apperr.StatusCode(err)
		message := apperr.PublicMessage(err)

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     code,
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request rejected")
		}

		return ErrorResponse(c, code, message)
	}
}
