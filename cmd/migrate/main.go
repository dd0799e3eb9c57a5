// migrate aplica las migraciones SQL embebidas sobre PostgreSQL.
//
// Uso: go run ./cmd/migrate -up | -down | -steps N | -version | -force N
// El DSN se toma de -dsn o de la configuración (DATABASE_URL / DB_*).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/empresas-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/empresas-api/pkg/config"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

func main() {
	var (
		dsn     = flag.String("dsn", "", "connection string de PostgreSQL")
		up      = flag.Bool("up", false, "aplicar todas las migraciones pendientes")
		down    = flag.Bool("down", false, "revertir todas las migraciones")
		steps   = flag.Int("steps", 0, "número de pasos (positivo=up, negativo=down)")
		version = flag.Bool("version", false, "mostrar la versión actual")
		force   = flag.Int("force", -1, "forzar la versión (solo para reparar un estado dirty)")
	)
	flag.Parse()

	forceSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "force" {
			forceSet = true
		}
	})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if *dsn == "" {
		*dsn = cfg.DB.ConnectionString()
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatal().Err(err).Msg("fuente de migraciones")
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("leer versión")
		}
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión actual")
	case forceSet:
		if err := m.Force(*force); err != nil {
			log.Fatal().Err(err).Msg("forzar versión")
		}
		log.Info().Int("version", *force).Msg("versión forzada")
	case *up:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones up")
		}
		log.Info().Msg("migraciones aplicadas")
	case *down:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones down")
		}
		log.Info().Msg("migraciones revertidas")
	case *steps != 0:
		if err := m.Steps(*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migraciones por pasos")
		}
		log.Info().Int("steps", *steps).Msg("pasos aplicados")
	default:
		fmt.Println("uso: migrate [-dsn <connection-string>] -up | -down | -steps N | -version | -force N")
		flag.PrintDefaults()
	}
}
