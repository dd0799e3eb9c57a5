package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
	"github.com/jhoicas/empresas-api/internal/infrastructure/memory"
)

func newCompany(taxID, email string) *entity.Company {
	return &entity.Company{Name: "ACME", TaxID: taxID, Address: "Rua A, 1", Email: email, Phone: "11987654321"}
}

func TestCompanyRepo_CreateAsignaIDYRespetaUnicidad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Companies()

	first := newCompany("12345678901234", "a@acme.com")
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	err := repo.Create(ctx, newCompany("12345678901234", "b@acme.com"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "tax_id")

	err = repo.Create(ctx, newCompany("99999999999999", "a@acme.com"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "email")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCompanyRepo_DeleteBloqueadoPorFK(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	c := newCompany("12345678901234", "a@acme.com")
	require.NoError(t, store.Companies().Create(ctx, c))
	o := &entity.Obligation{Name: "DCTF", Periodicity: entity.PeriodicityMonthly, CompanyID: c.ID}
	require.NoError(t, store.Obligations().Create(ctx, o))

	assert.ErrorIs(t, store.Companies().Delete(ctx, c.ID), domain.ErrConflict)

	require.NoError(t, store.Obligations().Delete(ctx, o.ID))
	require.NoError(t, store.Companies().Delete(ctx, c.ID))

	got, err := store.Companies().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, store.Companies().Delete(ctx, c.ID), domain.ErrNotFound)
}

func TestObligationRepo_RestriccionesDeEsquema(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.Obligations().Create(ctx, &entity.Obligation{Name: "x", Periodicity: entity.PeriodicityAnnual, CompanyID: 99999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c := newCompany("12345678901234", "a@acme.com")
	require.NoError(t, store.Companies().Create(ctx, c))
	err = store.Obligations().Create(ctx, &entity.Obligation{Name: "x", Periodicity: "MENSAL", CompanyID: c.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidEnum, "solo se persiste la forma canónica")

	n, err := store.Obligations().CountByCompany(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_RunHaceRollbackSiFnFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(companies repository.CompanyRepository, _ repository.ObligationRepository) error {
		require.NoError(t, companies.Create(ctx, newCompany("12345678901234", "a@acme.com")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := store.Companies().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "la escritura de la tx fallida no debe ser visible")

	err = store.Run(ctx, func(companies repository.CompanyRepository, _ repository.ObligationRepository) error {
		return companies.Create(ctx, newCompany("12345678901234", "a@acme.com"))
	})
	require.NoError(t, err)
	list, err = store.Companies().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_RunRespetaContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := memory.NewStore().Run(ctx, func(repository.CompanyRepository, repository.ObligationRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
