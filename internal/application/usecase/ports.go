package usecase

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		obligations repository.ObligationRepository,
	) error) error
}

// Cache caché de lectura por clave. Los fallos de la caché no llegan al caso de uso:
// la implementación los registra y se comporta como un miss.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any)
	Delete(ctx context.Context, keys ...string)
}

// NoopCache caché deshabilitada.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) bool { return false }
func (NoopCache) Set(context.Context, string, any)      {}
func (NoopCache) Delete(context.Context, ...string)     {}
