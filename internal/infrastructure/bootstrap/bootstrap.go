// Package bootstrap arma los casos de uso sobre el almacenamiento y la caché configurados.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/infrastructure/cache"
	"github.com/jhoicas/empresas-api/internal/infrastructure/memory"
	"github.com/jhoicas/empresas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/empresas-api/pkg/config"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// Services casos de uso listos para inyectar en HTTP o en el importador.
type Services struct {
	Companies   *usecase.CompanyUseCase
	Obligations *usecase.ObligationUseCase
}

// Open conecta PostgreSQL (o crea el almacén en memoria) y Redis si está configurado.
// La función devuelta libera las conexiones abiertas y debe llamarse también cuando err != nil.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Services, func(), error) {
	var closers []func()
	closeFn := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var c usecase.Cache = usecase.NoopCache{}
	if cfg.Cache.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Cache.Addr)
		if err != nil {
			return nil, closeFn, fmt.Errorf("conexión a Redis: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })
		c = cache.NewRedisCache(client, cfg.Cache.TTL, log)
		log.Info().Str("addr", cfg.Cache.Addr).Dur("ttl", cfg.Cache.TTL).Msg("caché Redis habilitada")
	}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		store := memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return &Services{
			Companies:   usecase.NewCompanyUseCase(store.Companies(), store, c),
			Obligations: usecase.NewObligationUseCase(store.Obligations(), store, c),
		}, closeFn, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, closeFn, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		closers = append(closers, pool.Close)
		tx := postgres.NewTxRunner(pool)
		return &Services{
			Companies:   usecase.NewCompanyUseCase(postgres.NewCompanyRepository(pool), tx, c),
			Obligations: usecase.NewObligationUseCase(postgres.NewObligationRepository(pool), tx, c),
		}, closeFn, nil
	}
}
