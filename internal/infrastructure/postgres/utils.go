package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/validation"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// checkConstraints mapea los CHECK del esquema al campo expuesto en la API.
var checkConstraints = map[string]*domain.FieldError{
	"companies_tax_id_check": {Field: validation.FieldTaxID, Expected: "14 dígitos numéricos", Kind: domain.ErrInvalidFormat},
	"companies_phone_check":  {Field: validation.FieldPhone, Expected: "11 dígitos numéricos", Kind: domain.ErrInvalidFormat},
	"obligations_periodicity_check": {
		Field: validation.FieldPeriodicity, Expected: "'mensal', 'trimestral' ou 'anual'", Kind: domain.ErrInvalidEnum,
	},
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// translateError convierte errores de PostgreSQL en errores de dominio.
// fkKind indica qué significa una violación de FK para la operación:
// domain.ErrNotFound al escribir una obligación (empresa inexistente),
// domain.ErrConflict al borrar una empresa referenciada.
func translateError(err error, op string, fkKind error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch {
	case isUniqueViolation(err):
		return domain.Conflictf("%s", pgDetail(pgErr))
	case isForeignKeyViolation(err) && fkKind != nil:
		return fmt.Errorf("%w: %s", fkKind, pgDetail(pgErr))
	case pgErr.Code == codeCheckViolation:
		if fe, ok := checkConstraints[pgErr.ConstraintName]; ok {
			out := *fe
			return &out
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func pgDetail(pgErr *pgconn.PgError) string {
	if pgErr.Detail != "" {
		return pgErr.Detail
	}
	return pgErr.Message
}
