package memory

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo repositorio de empresas en memoria.
type CompanyRepo struct {
	store *Store
	tx    *dataset
}

func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		if err := checkCompanyUnique(ds, company); err != nil {
			return err
		}
		now := r.store.now()
		company.ID = ds.nextCompanyID
		company.CreatedAt = now
		company.UpdatedAt = now
		ds.nextCompanyID++
		ds.companies[company.ID] = *company
		return nil
	})
}

func (r *CompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	var out *entity.Company
	err := r.store.with(r.tx, func(ds *dataset) error {
		if c, ok := ds.companies[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CompanyRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Company, error) {
	return r.find(func(c entity.Company) bool { return c.TaxID == taxID })
}

func (r *CompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	return r.find(func(c entity.Company) bool { return c.Email == email })
}

func (r *CompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	var list []*entity.Company
	err := r.store.with(r.tx, func(ds *dataset) error {
		for _, id := range sortedKeys(ds.companies) {
			c := ds.companies[id]
			list = append(list, &c)
		}
		return nil
	})
	return list, err
}

func (r *CompanyRepo) Update(_ context.Context, company *entity.Company) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		current, ok := ds.companies[company.ID]
		if !ok {
			return domain.NotFoundf("empresa %d", company.ID)
		}
		if err := checkCompanyUnique(ds, company); err != nil {
			return err
		}
		company.CreatedAt = current.CreatedAt
		company.UpdatedAt = r.store.now()
		ds.companies[company.ID] = *company
		return nil
	})
}

func (r *CompanyRepo) Delete(_ context.Context, id int64) error {
	return r.store.with(r.tx, func(ds *dataset) error {
		if _, ok := ds.companies[id]; !ok {
			return domain.NotFoundf("empresa %d", id)
		}
		for _, o := range ds.obligations {
			if o.CompanyID == id {
				return domain.Conflictf("Key (id)=(%d) is still referenced from table \"obligations\".", id)
			}
		}
		delete(ds.companies, id)
		return nil
	})
}

func (r *CompanyRepo) find(match func(entity.Company) bool) (*entity.Company, error) {
	var out *entity.Company
	err := r.store.with(r.tx, func(ds *dataset) error {
		for _, c := range ds.companies {
			if match(c) {
				c := c
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func checkCompanyUnique(ds *dataset, company *entity.Company) error {
	for _, c := range ds.companies {
		if c.ID == company.ID {
			continue
		}
		if c.TaxID == company.TaxID {
			return domain.Conflictf("Key (tax_id)=(%s) already exists.", company.TaxID)
		}
		if c.Email == company.Email {
			return domain.Conflictf("Key (email)=(%s) already exists.", company.Email)
		}
	}
	return nil
}
