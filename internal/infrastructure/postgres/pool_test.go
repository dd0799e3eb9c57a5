package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPoolLimits_MinConnsNoSuperaMaxConns(t *testing.T) {
	tests := []struct {
		name    string
		max     int32
		wantMin int32
	}{
		{"una conexión", 1, 1},
		{"dos conexiones", 2, 2},
		{"pool por defecto", 25, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/empresas?sslmode=disable")
			require.NoError(t, err)

			applyPoolLimits(cfg, tt.max)

			assert.Equal(t, tt.max, cfg.MaxConns)
			assert.Equal(t, tt.wantMin, cfg.MinConns)
			assert.LessOrEqual(t, cfg.MinConns, cfg.MaxConns)
		})
	}
}
