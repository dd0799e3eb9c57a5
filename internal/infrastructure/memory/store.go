// Package memory implementa los puertos de persistencia en memoria, con las mismas
// restricciones que el esquema PostgreSQL (unicidad, FK, CHECK de periodicidad).
// Se usa con STORE_DRIVER=memory y en los tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*Store)(nil)

type dataset struct {
	companies        map[int64]entity.Company
	obligations      map[int64]entity.Obligation
	nextCompanyID    int64
	nextObligationID int64
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		companies:        make(map[int64]entity.Company, len(d.companies)),
		obligations:      make(map[int64]entity.Obligation, len(d.obligations)),
		nextCompanyID:    d.nextCompanyID,
		nextObligationID: d.nextObligationID,
	}
	for k, v := range d.companies {
		c.companies[k] = v
	}
	for k, v := range d.obligations {
		c.obligations[k] = v
	}
	return c
}

// Store almacén en memoria. Run serializa las transacciones: trabaja sobre una copia
// y la publica solo si fn no devuelve error.
type Store struct {
	mu   sync.Mutex
	data *dataset
	now  func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		data: &dataset{
			companies:        map[int64]entity.Company{},
			obligations:      map[int64]entity.Obligation{},
			nextCompanyID:    1,
			nextObligationID: 1,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Companies devuelve el repositorio de empresas fuera de transacción.
func (s *Store) Companies() *CompanyRepo {
	return &CompanyRepo{store: s}
}

// Obligations devuelve el repositorio de obligaciones fuera de transacción.
func (s *Store) Obligations() *ObligationRepo {
	return &ObligationRepo{store: s}
}

// Run ejecuta fn con repositorios atados a una copia de los datos.
func (s *Store) Run(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	obligations repository.ObligationRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.data.clone()
	if err := fn(&CompanyRepo{store: s, tx: work}, &ObligationRepo{store: s, tx: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

// with ejecuta fn sobre el dataset de la tx o, fuera de tx, sobre el confirmado bajo lock.
func (s *Store) with(tx *dataset, fn func(*dataset) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
