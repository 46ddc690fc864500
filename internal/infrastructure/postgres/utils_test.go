package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// Postgres rechaza con 22P02 cualquier texto que no sea uuid.
var errBadUUID = &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

// rejectingQuerier falla como lo haría Postgres y cuenta cuántas consultas llegaron.
type rejectingQuerier struct{ calls int }

func (q *rejectingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, errBadUUID
}

func (q *rejectingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, errBadUUID
}

func (q *rejectingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return rejectedRow{}
}

type rejectedRow struct{}

func (rejectedRow) Scan(...any) error { return errBadUUID }

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID(uuid.NewString()))
	for _, id := range []string{"", "x", "not-a-uuid", "b-1", strings.ReplaceAll(uuid.NewString(), "-", ""), "{" + uuid.NewString() + "}", "urn:uuid:" + uuid.NewString()} {
		assert.False(t, isUUID(id), id)
	}
}

func TestGetByID_IDNoUUIDNoConsulta(t *testing.T) {
	ctx := context.Background()
	q := &rejectingQuerier{}

	b, err := NewBrandRepository(q).GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, b)

	c, err := NewCategoryRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, c)

	p, err := NewPartRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := NewSupplierRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, s)

	st, err := NewStoreRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, st)

	rk, err := NewRackRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, rk)

	rk, err = NewRackRepository(q).GetByStoreAndNumber(ctx, "x", "R-1")
	require.NoError(t, err)
	assert.Nil(t, rk)

	k, err := NewKitRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, k)

	a, err := NewAdjustmentRepository(q).GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, a)

	assert.Zero(t, q.calls)
}

func TestRackRepo_FiltroTiendaNoUUID(t *testing.T) {
	ctx := context.Background()
	q := &rejectingQuerier{}
	r := NewRackRepository(q)

	list, err := r.List(ctx, repository.RackFilter{StoreID: "x"})
	require.NoError(t, err)
	assert.Empty(t, list)

	n, err := r.Count(ctx, repository.RackFilter{StoreID: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, q.calls)
}

func TestGetByID_UUIDValidoSiConsulta(t *testing.T) {
	q := &rejectingQuerier{}
	_, err := NewBrandRepository(q).GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errBadUUID)
	assert.Equal(t, 1, q.calls)
}
