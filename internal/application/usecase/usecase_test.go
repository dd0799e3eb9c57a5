package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
	"github.com/jhoicas/empresas-api/internal/infrastructure/memory"
)

// mapCache caché en memoria para verificar lecturas e invalidaciones.
type mapCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	deleted []string
}

func newMapCache() *mapCache { return &mapCache{items: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string, dst any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[key]
	if !ok {
		return false
	}
	return json.Unmarshal(b, dst) == nil
}

func (c *mapCache) Set(_ context.Context, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, _ := json.Marshal(value)
	c.items[key] = b
}

func (c *mapCache) Delete(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
		c.deleted = append(c.deleted, k)
	}
}

// blockingCompanyRepo detiene GetByID después de leer la fila hasta que se cierre release.
type blockingCompanyRepo struct {
	repository.CompanyRepository
	loaded  chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingCompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	c, err := r.CompanyRepository.GetByID(ctx, id)
	r.once.Do(func() {
		close(r.loaded)
		<-r.release
	})
	return c, err
}

type fixture struct {
	store       *memory.Store
	cache       *mapCache
	companies   *usecase.CompanyUseCase
	obligations *usecase.ObligationUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	cache := newMapCache()
	return &fixture{
		store:       store,
		cache:       cache,
		companies:   usecase.NewCompanyUseCase(store.Companies(), store, cache),
		obligations: usecase.NewObligationUseCase(store.Obligations(), store, cache),
	}
}

func validCompany() dto.CompanyRequest {
	return dto.CompanyRequest{
		Name:    "Contabilidade Silva",
		TaxID:   "12345678000190",
		Address: "Av. Paulista, 1000",
		Email:   "contato@silva.com.br",
		Phone:   "11987654321",
	}
}

func (f *fixture) mustCreateCompany(t *testing.T, in dto.CompanyRequest) *dto.CompanyResponse {
	t.Helper()
	out, err := f.companies.Create(context.Background(), in)
	require.NoError(t, err)
	return out
}
