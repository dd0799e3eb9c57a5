package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// ObligationRepository puerto de persistencia para obligaciones accesorias.
type ObligationRepository interface {
	Create(ctx context.Context, obligation *entity.Obligation) error
	GetByID(ctx context.Context, id int64) (*entity.Obligation, error)
	List(ctx context.Context) ([]*entity.Obligation, error)
	Update(ctx context.Context, obligation *entity.Obligation) error
	Delete(ctx context.Context, id int64) error
	CountByCompany(ctx context.Context, companyID int64) (int, error)
}
