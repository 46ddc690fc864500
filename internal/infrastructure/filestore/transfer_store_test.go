package filestore

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

func TestList_ArchivoInexistenteEsVacio(t *testing.T) {
	s := NewTransferStore(filepath.Join(t.TempDir(), "no-existe", "transfers.json"))
	list, total, err := s.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
	assert.Equal(t, 0, total)
}

func TestCreate_CreaArchivoYGeneraID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stock-transfers.json")
	s := NewTransferStore(path)
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	out, err := s.Create(context.Background(), entity.StockTransfer{
		TransferNo: "TR-1",
		Status:     entity.TransferStatusDraft,
		Items:      []entity.StockTransferItem{{PartNo: "OF-1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^transfer-1700000000123-[0-9a-f]{8}$`), out.ID)

	_, err = os.Stat(path)
	require.NoError(t, err)

	list, total, err := s.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "TR-1", list[0].TransferNo)
	assert.Equal(t, 3, list[0].Items[0].Quantity)
}

func TestList_OrdenDescendenteYPaginas(t *testing.T) {
	s := NewTransferStore(filepath.Join(t.TempDir(), "t.json"))
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		s.now = func() time.Time { return at }
		_, err := s.Create(context.Background(), entity.StockTransfer{TransferNo: at.Format("15")})
		require.NoError(t, err)
	}

	page1, total, err := s.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "12", page1[0].TransferNo)
	assert.Equal(t, "11", page1[1].TransferNo)

	page3, _, err := s.List(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "08", page3[0].TransferNo)

	page9, _, err := s.List(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Empty(t, page9)
}

func TestList_PaginaEnormeEsVacia(t *testing.T) {
	s := NewTransferStore(filepath.Join(t.TempDir(), "t.json"))
	_, err := s.Create(context.Background(), entity.StockTransfer{TransferNo: "TR-1"})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		list, total, err := s.List(context.Background(), math.MaxInt/10+2, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.Equal(t, 1, total)
	})
}

func TestList_ArchivoCorruptoEsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, _, err := NewTransferStore(path).List(context.Background(), 1, 10)
	assert.Error(t, err)
}
