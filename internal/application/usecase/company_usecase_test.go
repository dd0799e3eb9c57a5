package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/validation"
)

func TestCompanyCreate_RoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	in := validCompany()

	created := f.mustCreateCompany(t, in)
	assert.NotZero(t, created.ID)

	got, err := f.companies.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.TaxID, got.TaxID)
	assert.Equal(t, in.Address, got.Address)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Phone, got.Phone)
	assert.Equal(t, created.ID, got.ID)
}

func TestCompanyCreate_TaxIDDuplicadoEsConflictoSinEscribir(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.mustCreateCompany(t, validCompany())

	dup := validCompany()
	dup.Email = "outro@silva.com.br"
	_, err := f.companies.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := f.companies.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "el número de filas no cambia")
}

func TestCompanyCreate_EmailDuplicadoEsConflicto(t *testing.T) {
	f := newFixture()
	f.mustCreateCompany(t, validCompany())

	dup := validCompany()
	dup.TaxID = "98765432000110"
	_, err := f.companies.Create(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "email")
}

func TestCompanyCreate_ValidaEnOrden(t *testing.T) {
	f := newFixture()
	in := validCompany()
	in.TaxID = "1234"
	in.Email = "invalido"

	_, err := f.companies.Create(context.Background(), in)
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, validation.FieldTaxID, fe.Field)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	list, _ := f.companies.List(context.Background())
	assert.Empty(t, list)
}

func TestCompanyGetByID_Inexistente(t *testing.T) {
	f := newFixture()
	_, err := f.companies.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_Inexistente(t *testing.T) {
	f := newFixture()
	_, err := f.companies.Update(context.Background(), 0, validCompany())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// NotFound tiene prioridad sobre la validación de formato.
func TestCompanyUpdate_InexistenteConDatosInvalidos(t *testing.T) {
	f := newFixture()
	in := validCompany()
	in.Phone = "123"
	_, err := f.companies.Update(context.Background(), 7, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_SobrescribeCamposEInvalidaCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.mustCreateCompany(t, validCompany())

	// Calienta la caché.
	_, err := f.companies.GetByID(ctx, created.ID)
	require.NoError(t, err)

	in := dto.CompanyRequest{
		Name:    "Silva & Filhos",
		TaxID:   created.TaxID, // conservar su propio tax_id no es conflicto
		Address: "Rua Nova, 2",
		Email:   "fiscal@silva.com.br",
		Phone:   "21912345678",
	}
	updated, err := f.companies.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Silva & Filhos", updated.Name)
	assert.Contains(t, f.cache.deleted, "company:1")

	got, err := f.companies.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "fiscal@silva.com.br", got.Email)
	assert.Equal(t, "21912345678", got.Phone)
}

func TestCompanyUpdate_TaxIDDeOtraEmpresaEsConflicto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := f.mustCreateCompany(t, validCompany())
	other := validCompany()
	other.TaxID = "98765432000110"
	other.Email = "b@b.com"
	second := f.mustCreateCompany(t, other)

	in := other
	in.TaxID = first.TaxID
	_, err := f.companies.Update(ctx, second.ID, in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := f.companies.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "98765432000110", got.TaxID, "sin escritura parcial")
}

func TestCompanyUpdate_ValidaFormato(t *testing.T) {
	f := newFixture()
	created := f.mustCreateCompany(t, validCompany())
	in := validCompany()
	in.Email = "sem-arroba"
	_, err := f.companies.Update(context.Background(), created.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestCompanyDelete_ConObligacionesEsConflicto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.mustCreateCompany(t, validCompany())
	_, err := f.obligations.Create(ctx, dto.ObligationRequest{Name: "SPED", Periodicity: "anual", CompanyID: c.ID})
	require.NoError(t, err)

	err = f.companies.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.companies.GetByID(ctx, c.ID)
	assert.NoError(t, err, "la empresa sigue existiendo")
}

func TestCompanyDelete_SinObligaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.mustCreateCompany(t, validCompany())
	_, err := f.companies.GetByID(ctx, c.ID)
	require.NoError(t, err)

	require.NoError(t, f.companies.Delete(ctx, c.ID))

	_, err = f.companies.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la caché no debe devolver la empresa eliminada")
}

func TestCompanyDelete_Inexistente(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.companies.Delete(context.Background(), 5), domain.ErrNotFound)
}
