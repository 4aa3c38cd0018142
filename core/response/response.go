// Package response renders service results and errors as fiber JSON responses.
package response

import (
	"errors"

	"bookstore/core/apperror"
	"bookstore/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Error writes err with the status mapped from its code.
// Internal errors are logged with their cause and rendered with a generic message.
func Error(c *fiber.Ctx, l *zap.Logger, err error) error {
	l = logger.WithRayID(l, c)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Code == apperror.CodeInternal {
		l.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{
			Error: "internal server error",
			Code:  string(apperror.CodeInternal),
		})
	}

	l.Debug("Request rejected", zap.String("code", string(appErr.Code)), zap.String("message", appErr.Message))
	return c.Status(appErr.HTTPStatus()).JSON(ErrorBody{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// Created writes data with 201.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NoContent writes an empty 204.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// BadBody reports an undecodable request body.
func BadBody(c *fiber.Ctx, l *zap.Logger, err error) error {
	return Error(c, l, apperror.Wrap(err, apperror.CodeValidation, "invalid request body"))
}
