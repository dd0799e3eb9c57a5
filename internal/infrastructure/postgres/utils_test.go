package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/validation"
)

func TestTranslateError_UniqueEsConflictoConDetalle(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           codeUniqueViolation,
		ConstraintName: "companies_tax_id_key",
		Detail:         "Key (tax_id)=(12345678901234) already exists.",
	}
	err := translateError(fmt.Errorf("wrapped: %w", pgErr), "insert company", nil)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "Key (tax_id)=(12345678901234) already exists.")
}

func TestTranslateError_FKSegunOperacion(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    codeForeignKeyViolation,
		Message: `update or delete on table "companies" violates foreign key constraint "obligations_company_id_fkey" on table "obligations"`,
		Detail:  `Key (id)=(1) is still referenced from table "obligations".`,
	}
	err := translateError(pgErr, "delete company", domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "still referenced")

	pgErr = &pgconn.PgError{
		Code:   codeForeignKeyViolation,
		Detail: `Key (company_id)=(99999) is not present in table "companies".`,
	}
	err = translateError(pgErr, "insert obligation", domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestTranslateError_CheckAFieldError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "obligations_periodicity_check"}
	err := translateError(pgErr, "insert obligation", domain.ErrNotFound)

	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, validation.FieldPeriodicity, fe.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidEnum)

	// Un CHECK desconocido no se disfraza de error de validación.
	err = translateError(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "otro"}, "op", nil)
	assert.False(t, errors.As(err, &fe))
}

func TestTranslateError_OtrosErroresSeEnvuelven(t *testing.T) {
	assert.NoError(t, translateError(nil, "op", nil))

	base := errors.New("conexión perdida")
	err := translateError(base, "insert company", nil)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "insert company: conexión perdida", err.Error())
}
