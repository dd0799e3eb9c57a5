package memory

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
	"github.com/jhoicas/empresas-api/internal/domain/validation"
)

var _ repository.ObligationRepository = (*ObligationRepo)(nil)

// ObligationRepo repositorio de obligaciones en memoria.
type ObligationRepo struct {
	store *Store
	tx    *dataset
}

func (r *ObligationRepo) Create(_ context.Context, obligation *entity.Obligation) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		if err := checkObligation(ds, obligation); err != nil {
			return err
		}
		now := r.store.now()
		obligation.ID = ds.nextObligationID
		obligation.CreatedAt = now
		obligation.UpdatedAt = now
		ds.nextObligationID++
		ds.obligations[obligation.ID] = *obligation
		return nil
	})
}

func (r *ObligationRepo) GetByID(_ context.Context, id int64) (*entity.Obligation, error) {
	var out *entity.Obligation
	err := r.store.with(r.tx, func(ds *dataset) error {
		if o, ok := ds.obligations[id]; ok {
			out = &o
		}
		return nil
	})
	return out, err
}

func (r *ObligationRepo) List(_ context.Context) ([]*entity.Obligation, error) {
	var list []*entity.Obligation
	err := r.store.with(r.tx, func(ds *dataset) error {
		for _, id := range sortedKeys(ds.obligations) {
			o := ds.obligations[id]
			list = append(list, &o)
		}
		return nil
	})
	return list, err
}

func (r *ObligationRepo) Update(_ context.Context, obligation *entity.Obligation) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		current, ok := ds.obligations[obligation.ID]
		if !ok {
			return domain.NotFoundf("obligación %d", obligation.ID)
		}
		if err := checkObligation(ds, obligation); err != nil {
			return err
		}
		obligation.CreatedAt = current.CreatedAt
		obligation.UpdatedAt = r.store.now()
		ds.obligations[obligation.ID] = *obligation
		return nil
	})
}

func (r *ObligationRepo) Delete(_ context.Context, id int64) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		if _, ok := ds.obligations[id]; !ok {
			return domain.NotFoundf("obligación %d", id)
		}
		delete(ds.obligations, id)
		return nil
	})
}

func (r *ObligationRepo) CountByCompany(_ context.Context, companyID int64) (int, error) {
	n := 0
	err := r.store.with(r.tx, func(ds *dataset) error {
		for _, o := range ds.obligations {
			if o.CompanyID == companyID {
				n++
			}
		}
		return nil
	})
	return n, err
}

// checkObligation replica la FK a companies y el CHECK de periodicidad.
func checkObligation(ds *dataset, o *entity.Obligation) error {
	if _, ok := ds.companies[o.CompanyID]; !ok {
		return domain.NotFoundf("empresa %d", o.CompanyID)
	}
	if p, err := validation.NormalizePeriodicity(string(o.Periodicity)); err != nil || p != o.Periodicity {
		return &domain.FieldError{Field: validation.FieldPeriodicity, Expected: "'mensal', 'trimestral' ou 'anual'", Kind: domain.ErrInvalidEnum}
	}
	return nil
}
