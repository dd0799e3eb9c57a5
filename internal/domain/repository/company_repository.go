package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get* devuelven (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id int64) error
}
