package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

func TestStatsRepo_TipoDesconocidoNoConsulta(t *testing.T) {
	r := NewStatsRepository(nil)
	_, err := r.CountActive(context.Background(), repository.StatKind("users; DROP TABLE parts"), time.Now(), true)
	assert.Error(t, err)
}

func TestStatTables_CubreTodosLosTipos(t *testing.T) {
	for _, k := range repository.StatKinds {
		_, ok := statTables[k]
		assert.True(t, ok, string(k))
	}
}

func TestLookupIPv4_Literal(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "127.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}
