// Package filestore guarda los traslados de stock en un archivo JSON mientras no exista tabla.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

var _ inventory.TransferStore = (*TransferStore)(nil)

// TransferStore lee y reescribe el archivo completo en cada operación.
// No hay lock: dos Create concurrentes pueden perder uno de los registros.
type TransferStore struct {
	path string
	now  func() time.Time
}

// NewTransferStore construye el store sobre path; el archivo se crea en el primer Create.
func NewTransferStore(path string) *TransferStore {
	return &TransferStore{path: path, now: time.Now}
}

// List devuelve la página pedida (createdAt descendente) y el total. Archivo ausente = colección vacía.
func (s *TransferStore) List(_ context.Context, page, limit int) ([]entity.StockTransfer, int, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := len(all)
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		return []entity.StockTransfer{}, total, nil
	}
	// Comparar contra el número de páginas evita multiplicar una página enorme.
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if page > pages {
		return []entity.StockTransfer{}, total, nil
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

// Create agrega t con id "transfer-<unix ms>-<aleatorio>" y reescribe el archivo.
func (s *TransferStore) Create(_ context.Context, t entity.StockTransfer) (*entity.StockTransfer, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	now := s.now()
	t.ID = fmt.Sprintf("transfer-%d-%s", now.UnixMilli(), uuid.New().String()[:8])
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Items == nil {
		t.Items = []entity.StockTransferItem{}
	}
	all = append(all, t)
	if err := s.writeAll(all); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransferStore) readAll() ([]entity.StockTransfer, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []entity.StockTransfer{}, nil
		}
		return nil, fmt.Errorf("leer traslados: %w", err)
	}
	if len(raw) == 0 {
		return []entity.StockTransfer{}, nil
	}
	var all []entity.StockTransfer
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decodificar traslados: %w", err)
	}
	return all, nil
}

func (s *TransferStore) writeAll(all []entity.StockTransfer) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio de traslados: %w", err)
		}
	}
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar traslados: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("escribir traslados: %w", err)
	}
	return nil
}
