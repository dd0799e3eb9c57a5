package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// ObligationHandler maneja las peticiones HTTP para obligaciones accesorias.
type ObligationHandler struct {
	uc       *usecase.ObligationUseCase
	log      *logger.Logger
	validate *validator.Validate
}

// NewObligationHandler construye el handler.
func NewObligationHandler(uc *usecase.ObligationUseCase, log *logger.Logger) *ObligationHandler {
	return &ObligationHandler{uc: uc, log: log, validate: newValidator()}
}

// List godoc
// @Summary      Listar obligaciones accesorias
// @Tags         obligations
// @Produce      json
// @Success      200  {array}   dto.ObligationResponse
// @Router       /api/obligations [get]
func (h *ObligationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener obligación por ID
// @Tags         obligations
// @Produce      json
// @Param        id   path  int  true  "ID de la obligación"
// @Success      200  {object}  dto.ObligationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obligations/{id} [get]
func (h *ObligationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear obligación accesoria
// @Tags         obligations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ObligationRequest  true  "Datos de la obligación"
// @Success      201   {object}  dto.ObligationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obligations [post]
func (h *ObligationHandler) Create(c *fiber.Ctx) error {
	var in dto.ObligationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar obligación accesoria
// @Tags         obligations
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID de la obligación"
// @Param        body  body  dto.ObligationRequest  true  "Datos completos de la obligación"
// @Success      200   {object}  dto.ObligationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obligations/{id} [put]
func (h *ObligationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	var in dto.ObligationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar obligación accesoria
// @Tags         obligations
// @Param        id   path  int  true  "ID de la obligación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obligations/{id} [delete]
func (h *ObligationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
