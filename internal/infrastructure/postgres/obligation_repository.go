package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ repository.ObligationRepository = (*ObligationRepo)(nil)

const obligationColumns = `id, name, periodicity, company_id, created_at, updated_at`

// ObligationRepo implementación de ObligationRepository sobre PostgreSQL (pool o tx).
type ObligationRepo struct {
	q Querier
}

// NewObligationRepository construye el adaptador de obligaciones accesorias.
func NewObligationRepository(q Querier) *ObligationRepo {
	return &ObligationRepo{q: q}
}

// Create persiste la obligación. Una FK rota (empresa borrada entre la comprobación
// y el insert) se devuelve como domain.ErrNotFound.
func (r *ObligationRepo) Create(ctx context.Context, o *entity.Obligation) error {
	query := `
		INSERT INTO obligations (name, periodicity, company_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, o.Name, string(o.Periodicity), o.CompanyID).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return translateError(err, "insert obligation", domain.ErrNotFound)
}

// GetByID obtiene una obligación por ID. (nil, nil) si no existe.
func (r *ObligationRepo) GetByID(ctx context.Context, id int64) (*entity.Obligation, error) {
	var o entity.Obligation
	err := r.q.QueryRow(ctx, `SELECT `+obligationColumns+` FROM obligations WHERE id = $1`, id).Scan(
		&o.ID, &o.Name, &o.Periodicity, &o.CompanyID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get obligation: %w", err)
	}
	return &o, nil
}

// List devuelve todas las obligaciones.
func (r *ObligationRepo) List(ctx context.Context) ([]*entity.Obligation, error) {
	rows, err := r.q.Query(ctx, `SELECT `+obligationColumns+` FROM obligations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list obligations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Obligation
	for rows.Next() {
		var o entity.Obligation
		if err := rows.Scan(&o.ID, &o.Name, &o.Periodicity, &o.CompanyID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan obligation: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update sobrescribe nombre, periodicidad y empresa.
func (r *ObligationRepo) Update(ctx context.Context, o *entity.Obligation) error {
	query := `
		UPDATE obligations SET name = $2, periodicity = $3, company_id = $4, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query, o.ID, o.Name, string(o.Periodicity), o.CompanyID).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if isNoRows(err) {
		return domain.NotFoundf("obligación %d", o.ID)
	}
	return translateError(err, "update obligation", domain.ErrNotFound)
}

// Delete elimina una obligación por ID.
func (r *ObligationRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM obligations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete obligation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("obligación %d", id)
	}
	return nil
}

// CountByCompany cuenta las obligaciones que referencian a la empresa.
func (r *ObligationRepo) CountByCompany(ctx context.Context, companyID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM obligations WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count obligations: %w", err)
	}
	return n, nil
}
