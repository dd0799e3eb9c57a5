// seed carga empresas y obligaciones accesorias desde un XML (UTF-8 o ISO-8859-1).
//
// Uso: go run ./cmd/seed [ruta/empresas.xml]
// Por defecto busca empresas.xml en el directorio actual. Usa el mismo
// almacenamiento que la API (STORE_DRIVER, DATABASE_URL, ...).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/empresas-api/internal/infrastructure/bootstrap"
	"github.com/jhoicas/empresas-api/internal/infrastructure/seed"
	"github.com/jhoicas/empresas-api/pkg/config"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

func main() {
	xmlPath := "empresas.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("abrir XML")
	}
	doc, err := seed.Parse(f)
	_ = f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("leer XML")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		closeStore()
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer closeStore()

	res, err := seed.NewImporter(svc.Companies, svc.Obligations, log).Import(ctx, doc)
	if err != nil {
		log.Error().Err(err).Msg("importación interrumpida")
	}
	log.Info().
		Int("companies", res.Companies).
		Int("obligations", res.Obligations).
		Int("failed", res.Failed).
		Str("file", xmlPath).
		Msg("importación finalizada")
}
