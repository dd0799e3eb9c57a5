package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
	"github.com/jhoicas/empresas-api/internal/domain/validation"
)

// CompanyUseCase aplica reglas de negocio para empresas (validación, unicidad, integridad).
type CompanyUseCase struct {
	repo  repository.CompanyRepository
	tx    TxRunner
	reads *readCache
}

// NewCompanyUseCase construye el caso de uso. cache puede ser nil.
func NewCompanyUseCase(repo repository.CompanyRepository, tx TxRunner, cache Cache) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx, reads: newReadCache(cache)}
}

// Create crea una empresa. Valida tax_id, email y phone (en ese orden) y devuelve
// domain.ErrConflict si el tax_id o el email ya están registrados.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if err := validation.ValidateCompany(in.TaxID, in.Email, in.Phone); err != nil {
		return nil, err
	}
	company := &entity.Company{
		Name:    in.Name,
		TaxID:   in.TaxID,
		Address: in.Address,
		Email:   in.Email,
		Phone:   in.Phone,
	}
	err := uc.tx.Run(ctx, func(companies repository.CompanyRepository, _ repository.ObligationRepository) error {
		if err := ensureUniqueCompany(ctx, companies, company); err != nil {
			return err
		}
		return companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID o domain.ErrNotFound.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := readThrough(ctx, uc.reads, companyKey(id), func(ctx context.Context) (*entity.Company, error) {
		return uc.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFoundf("empresa %d", id)
	}
	return toCompanyResponse(company), nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Update sobrescribe todos los campos mutables de la empresa.
// domain.ErrNotFound si no existe; luego valida igual que Create.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	var updated *entity.Company
	err := uc.tx.Run(ctx, func(companies repository.CompanyRepository, _ repository.ObligationRepository) error {
		current, err := companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("empresa %d", id)
		}
		if err := validation.ValidateCompany(in.TaxID, in.Email, in.Phone); err != nil {
			return err
		}
		current.Name = in.Name
		current.TaxID = in.TaxID
		current.Address = in.Address
		current.Email = in.Email
		current.Phone = in.Phone
		if err := ensureUniqueCompany(ctx, companies, current); err != nil {
			return err
		}
		if err := companies.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.reads.invalidate(ctx, companyKey(id))
	return toCompanyResponse(updated), nil
}

// Delete elimina la empresa. domain.ErrConflict si todavía tiene obligaciones.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(companies repository.CompanyRepository, obligations repository.ObligationRepository) error {
		current, err := companies.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("empresa %d", id)
		}
		n, err := obligations.CountByCompany(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.Conflictf("la empresa %d tiene %d obligaciones asociadas", id, n)
		}
		// La FK obligations.company_id sigue siendo la garantía real ante inserciones concurrentes.
		return companies.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.reads.invalidate(ctx, companyKey(id))
	return nil
}

// ensureUniqueCompany verifica tax_id y email contra otras empresas.
func ensureUniqueCompany(ctx context.Context, companies repository.CompanyRepository, c *entity.Company) error {
	existing, err := companies.GetByTaxID(ctx, c.TaxID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return domain.Conflictf("ya existe una empresa con tax_id %s", c.TaxID)
	}
	existing, err = companies.GetByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != c.ID {
		return domain.Conflictf("ya existe una empresa con email %s", c.Email)
	}
	return nil
}

func companyKey(id int64) string {
	return fmt.Sprintf("company:%d", id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
