package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

type memTransferStore struct {
	created []entity.StockTransfer
}

func (m *memTransferStore) List(_ context.Context, page, limit int) ([]entity.StockTransfer, int, error) {
	return nil, len(m.created), nil
}

func (m *memTransferStore) Create(_ context.Context, t entity.StockTransfer) (*entity.StockTransfer, error) {
	t.ID = "transfer-1"
	m.created = append(m.created, t)
	return &t, nil
}

func TestTransferCreate_EstadoDraftPorDefecto(t *testing.T) {
	store := &memTransferStore{}
	uc := NewTransferUseCase(store)

	out, err := uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferNo:   "TR-001",
		TransferDate: "2025-03-01",
		Items:        []dto.TransferItemRequest{{PartNo: "OF-1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusDraft, out.Status)
	assert.Equal(t, "transfer-1", out.ID)
	require.Len(t, store.created, 1)
}

func TestTransferCreate_CamposObligatorios(t *testing.T) {
	uc := NewTransferUseCase(&memTransferStore{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateTransferRequest{TransferDate: "2025-03-01", Items: []dto.TransferItemRequest{{PartNo: "x", Quantity: 1}}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.CreateTransferRequest{TransferNo: "TR-1", Items: []dto.TransferItemRequest{{PartNo: "x", Quantity: 1}}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.CreateTransferRequest{TransferNo: "TR-1", TransferDate: "2025-03-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestTransferList_VacioNoEsNil(t *testing.T) {
	uc := NewTransferUseCase(&memTransferStore{})
	out, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.NotNil(t, out.Transfers)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, dto.DefaultPageLimit, out.Pagination.Limit)
}
