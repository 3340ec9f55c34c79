package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to a status and a client-safe message.
func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrTemplateNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrTierTooLow):
		return fiber.StatusForbidden, err.Error()
	case errors.Is(err, model.ErrInvalidResume),
		errors.Is(err, domain.ErrInvalidCustomization),
		errors.Is(err, ai.ErrUnsupportedSection):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCreditNotEnough):
		return fiber.StatusPaymentRequired, err.Error()
	case errors.Is(err, domain.ErrAlreadyReferred):
		return fiber.StatusConflict, err.Error()
	case usecase.IsCreditError(err):
		return fiber.StatusBadRequest, err.Error()
	case usecase.IsAIError(err):
		return fiber.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrRenderFailed):
		return fiber.StatusInternalServerError, domain.ErrRenderFailed.Error()
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

// ErrorHandler writes every handler error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
