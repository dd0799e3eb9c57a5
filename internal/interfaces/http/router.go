package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName  string
	CompanyUC    *usecase.CompanyUseCase
	ObligationUC *usecase.ObligationUseCase
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	obligations := api.Group("/obligations")
	obligationHandler := NewObligationHandler(deps.ObligationUC, log)
	obligations.Get("/", obligationHandler.List)
	obligations.Post("/", obligationHandler.Create)
	obligations.Get("/:id", obligationHandler.GetByID)
	obligations.Put("/:id", obligationHandler.Update)
	obligations.Delete("/:id", obligationHandler.Delete)
}
