package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, tax_id, address, email, phone, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa y completa ID y timestamps.
// Los UNIQUE de tax_id y email se traducen a domain.ErrConflict.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, tax_id, address, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		company.Name, company.TaxID, company.Address, company.Email, company.Phone,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	return translateError(err, "insert company", nil)
}

// GetByID obtiene una empresa por ID. (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByTaxID obtiene una empresa por CNPJ.
func (r *CompanyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE tax_id = $1`, taxID)
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos mutables. domain.ErrNotFound si la fila no existe.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, address = $4, email = $5, phone = $6, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		company.ID, company.Name, company.TaxID, company.Address, company.Email, company.Phone,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
	if isNoRows(err) {
		return domain.NotFoundf("empresa %d", company.ID)
	}
	return translateError(err, "update company", nil)
}

// Delete elimina una empresa. Si alguna obligación la referencia, la FK
// (ON DELETE RESTRICT) rechaza el borrado y se devuelve domain.ErrConflict.
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "delete company", domain.ErrConflict)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("empresa %d", id)
	}
	return nil
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
