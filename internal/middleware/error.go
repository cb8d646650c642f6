package middleware

import (
	"errors"
	"net/http"
	"strings"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Client-facing texts. Nothing from the underlying error reaches the body.
const (
	MessageBadRequest       = "bad request"
	MessageNotFound         = "resource not found"
	MessageMethodNotAllowed = "method not allowed"
	MessageUnprocessable    = "unprocessable"
	MessageInternal         = "internal server error"
)

// ErrorHandler is the centralized fiber error handler. Every failure is
// rendered as {success: false, error: <status>, message: <text>}.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.String("path", c.Path()),
				zap.Error(domainErr.Cause),
			}
			if len(domainErr.Context) > 0 {
				fields = append(fields, zap.Any("context", domainErr.Context))
			}
			if status >= http.StatusInternalServerError || domainErr.Cause != nil {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Warn("Domain error occurred", fields...)
			}
			return writeError(c, status)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			return writeError(c, fiberErr.Code)
		}

		// Handle unknown errors, including recovered panics
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, http.StatusInternalServerError)
	}
}

func writeError(c *fiber.Ctx, status int) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusText(status),
	})
}

// StatusText returns the envelope message for an HTTP status.
func StatusText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MessageBadRequest
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MessageUnprocessable
	case http.StatusInternalServerError:
		return MessageInternal
	default:
		return strings.ToLower(utils.StatusMessage(status))
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
