package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// loadTimeout acota la carga compartida, que ya no depende del ctx de quien la inició.
const loadTimeout = 10 * time.Second

// readCache envuelve la Cache con agrupación de cargas y una generación por clave.
// Una escritura incrementa la generación: una carga que empezó antes no se guarda
// en la caché y las lecturas posteriores no se unen a ella.
type readCache struct {
	cache Cache
	group singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

func newReadCache(c Cache) *readCache {
	if c == nil {
		c = NoopCache{}
	}
	return &readCache{cache: c, gens: map[string]uint64{}}
}

// invalidate se llama tras el commit de una escritura. El borrado no depende
// de que el cliente siga conectado.
func (rc *readCache) invalidate(ctx context.Context, keys ...string) {
	ctx = context.WithoutCancel(ctx)
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, k := range keys {
		rc.gens[k]++
		rc.group.Forget(k)
	}
	rc.cache.Delete(ctx, keys...)
}

func (rc *readCache) generation(key string) uint64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.gens[key]
}

// setIfCurrent guarda value solo si no hubo escrituras sobre key desde gen.
func (rc *readCache) setIfCurrent(ctx context.Context, key string, gen uint64, value any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.gens[key] != gen {
		return
	}
	rc.cache.Set(ctx, key, value)
}

// readThrough devuelve la entidad de la caché o la carga con load, agrupando
// las cargas concurrentes de la misma clave en una sola consulta.
// load devuelve (nil, nil) si la entidad no existe; en ese caso no se cachea nada.
// Cada llamador respeta su propio ctx; la carga compartida no se cancela con él.
func readThrough[T any](
	ctx context.Context,
	rc *readCache,
	key string,
	load func(context.Context) (*T, error),
) (*T, error) {
	var cached T
	if rc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	ch := rc.group.DoChan(key, func() (any, error) {
		gen := rc.generation(key)
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		v, err := load(loadCtx)
		if err != nil || v == nil {
			return v, err
		}
		rc.setIfCurrent(loadCtx, key, gen, v)
		return v, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	}
}
