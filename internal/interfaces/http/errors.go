package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// Códigos de error estables expuestos al cliente.
const (
	CodeInvalidBody   = "INVALID_BODY"
	CodeInvalidID     = "INVALID_ID"
	CodeValidation    = "VALIDATION"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeInvalidEnum   = "INVALID_ENUM"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInternal      = "INTERNAL"
)

// respondError es el único punto que traduce errores de dominio a status HTTP.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		code := CodeInvalidFormat
		if errors.Is(fe, domain.ErrInvalidEnum) {
			code = CodeInvalidEnum
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: fe.Error(), Field: fe.Field})
	case errors.Is(err, domain.ErrInvalidEnum):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidEnum, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidFormat, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Message: err.Error()})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
}

// parseID lee el parámetro :id como entero no negativo. El 0 se acepta y llega a 404.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, errors.New("id debe ser un entero no negativo")
	}
	return id, nil
}

func invalidID(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidID, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido: se espera JSON"})
}

// newValidator configura go-playground/validator para reportar el nombre JSON del campo.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationFailed responde 400 con la primera regla de forma (required, max) incumplida.
func validationFailed(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	}
	first := verrs[0]
	msg := first.Field() + " no cumple la regla '" + first.Tag() + "'"
	if first.Param() != "" {
		msg += " (" + first.Param() + ")"
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: msg, Field: first.Field()})
}
