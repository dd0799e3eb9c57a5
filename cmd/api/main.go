package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/empresas-api/docs"
	"github.com/jhoicas/empresas-api/internal/infrastructure/bootstrap"
	httpRouter "github.com/jhoicas/empresas-api/internal/interfaces/http"
	"github.com/jhoicas/empresas-api/pkg/config"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// @title        Empresas API
// @version      1.0
// @description  CRUD de empresas y obligaciones accesorias con integridad referencial.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	svc, closeStore, err := bootstrap.Open(context.Background(), cfg, log)
	if err != nil {
		closeStore()
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Empresas API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:  cfg.App.Name,
		CompanyUC:    svc.Companies,
		ObligationUC: svc.Obligations,
		Logger:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
