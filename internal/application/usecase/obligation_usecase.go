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

// ObligationUseCase casos de uso CRUD para obligaciones accesorias.
type ObligationUseCase struct {
	repo  repository.ObligationRepository
	tx    TxRunner
	reads *readCache
}

// NewObligationUseCase construye el caso de uso. cache puede ser nil.
func NewObligationUseCase(repo repository.ObligationRepository, tx TxRunner, cache Cache) *ObligationUseCase {
	return &ObligationUseCase{repo: repo, tx: tx, reads: newReadCache(cache)}
}

// Create crea una obligación. domain.ErrNotFound si la empresa no existe;
// domain.ErrInvalidEnum si la periodicidad no es mensal, trimestral o anual.
func (uc *ObligationUseCase) Create(ctx context.Context, in dto.ObligationRequest) (*dto.ObligationResponse, error) {
	obligation := &entity.Obligation{Name: in.Name, CompanyID: in.CompanyID}
	err := uc.tx.Run(ctx, func(companies repository.CompanyRepository, obligations repository.ObligationRepository) error {
		if err := ensureCompanyExists(ctx, companies, in.CompanyID); err != nil {
			return err
		}
		p, err := validation.NormalizePeriodicity(in.Periodicity)
		if err != nil {
			return err
		}
		obligation.Periodicity = p
		return obligations.Create(ctx, obligation)
	})
	if err != nil {
		return nil, err
	}
	return toObligationResponse(obligation), nil
}

// GetByID obtiene una obligación por ID o domain.ErrNotFound.
func (uc *ObligationUseCase) GetByID(ctx context.Context, id int64) (*dto.ObligationResponse, error) {
	obligation, err := readThrough(ctx, uc.reads, obligationKey(id), func(ctx context.Context) (*entity.Obligation, error) {
		return uc.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if obligation == nil {
		return nil, domain.NotFoundf("obligación %d", id)
	}
	return toObligationResponse(obligation), nil
}

// List lista todas las obligaciones.
func (uc *ObligationUseCase) List(ctx context.Context) ([]dto.ObligationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ObligationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toObligationResponse(o))
	}
	return items, nil
}

// Update sobrescribe nombre, periodicidad y empresa de la obligación.
func (uc *ObligationUseCase) Update(ctx context.Context, id int64, in dto.ObligationRequest) (*dto.ObligationResponse, error) {
	var updated *entity.Obligation
	err := uc.tx.Run(ctx, func(companies repository.CompanyRepository, obligations repository.ObligationRepository) error {
		current, err := obligations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("obligación %d", id)
		}
		if err := ensureCompanyExists(ctx, companies, in.CompanyID); err != nil {
			return err
		}
		p, err := validation.NormalizePeriodicity(in.Periodicity)
		if err != nil {
			return err
		}
		current.Name = in.Name
		current.Periodicity = p
		current.CompanyID = in.CompanyID
		if err := obligations.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.reads.invalidate(ctx, obligationKey(id))
	return toObligationResponse(updated), nil
}

// Delete elimina la obligación (no tiene dependientes).
func (uc *ObligationUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.tx.Run(ctx, func(_ repository.CompanyRepository, obligations repository.ObligationRepository) error {
		current, err := obligations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFoundf("obligación %d", id)
		}
		return obligations.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.reads.invalidate(ctx, obligationKey(id))
	return nil
}

func ensureCompanyExists(ctx context.Context, companies repository.CompanyRepository, id int64) error {
	company, err := companies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.NotFoundf("empresa %d", id)
	}
	return nil
}

func obligationKey(id int64) string {
	return fmt.Sprintf("obligation:%d", id)
}

func toObligationResponse(o *entity.Obligation) *dto.ObligationResponse {
	if o == nil {
		return nil
	}
	return &dto.ObligationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Periodicity: string(o.Periodicity),
		CompanyID:   o.CompanyID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
