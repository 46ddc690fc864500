package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var (
	_ repository.StoreRepository = (*StoreRepo)(nil)
	_ repository.RackRepository  = (*RackRepo)(nil)
)

const storeColumns = `id, code, name, address, status, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para almacenes.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// List lista almacenes por nombre.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtiene un almacén; nil si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var s entity.Store
	err := r.q.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Address, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Create persiste un almacén.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stores (`+storeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Code, s.Name, s.Address, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", mapWriteError(err, "Store code already exists", "store"))
	}
	return nil
}

// rackSelect carga el almacén de cada rack en la misma consulta.
const rackSelect = `
	SELECT r.id, r.rack_number, r.store_id, r.description, r.status, r.created_at, r.updated_at,
	       st.id, st.code, st.name, st.address, st.status, st.created_at, st.updated_at
	FROM racks r
	JOIN stores st ON st.id = r.store_id`

// RackRepo implementación del puerto RackRepository sobre PostgreSQL.
type RackRepo struct {
	q Querier
}

// NewRackRepository construye el adaptador.
func NewRackRepository(q Querier) *RackRepo {
	return &RackRepo{q: q}
}

func scanRack(row pgx.Row) (*entity.Rack, error) {
	var rk entity.Rack
	var st entity.Store
	err := row.Scan(&rk.ID, &rk.RackNumber, &rk.StoreID, &rk.Description, &rk.Status, &rk.CreatedAt, &rk.UpdatedAt,
		&st.ID, &st.Code, &st.Name, &st.Address, &st.Status, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rk.Store = &st
	return &rk, nil
}

func rackWhere(f repository.RackFilter) *whereBuilder {
	w := &whereBuilder{}
	w.AnyILike([]string{"r.rack_number", "r.description"}, f.Search).
		Eq("r.status", f.Status).
		Eq("r.store_id", f.StoreID)
	return w
}

// List lista racks por almacén y número.
func (r *RackRepo) List(ctx context.Context, f repository.RackFilter) ([]*entity.Rack, error) {
	if f.StoreID != "" && !isUUID(f.StoreID) {
		return []*entity.Rack{}, nil
	}
	w := rackWhere(f)
	where := w.SQL()
	page := w.Page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, rackSelect+where+` ORDER BY st.name ASC, r.rack_number ASC`+page, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list racks: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Rack, 0)
	for rows.Next() {
		rk, err := scanRack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rack: %w", err)
		}
		list = append(list, rk)
	}
	return list, rows.Err()
}

// Count total filtrado.
func (r *RackRepo) Count(ctx context.Context, f repository.RackFilter) (int, error) {
	if f.StoreID != "" && !isUUID(f.StoreID) {
		return 0, nil
	}
	w := rackWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM racks r`+w.SQL(), w.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count racks: %w", err)
	}
	return n, nil
}

// GetByID obtiene un rack con su almacén; nil si no existe.
func (r *RackRepo) GetByID(ctx context.Context, id string) (*entity.Rack, error) {
	if !isUUID(id) {
		return nil, nil
	}
	rk, err := scanRack(r.q.QueryRow(ctx, rackSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack: %w", err)
	}
	return rk, nil
}

// GetByStoreAndNumber busca un número de rack dentro de un almacén.
func (r *RackRepo) GetByStoreAndNumber(ctx context.Context, storeID, rackNumber string) (*entity.Rack, error) {
	if !isUUID(storeID) {
		return nil, nil
	}
	rk, err := scanRack(r.q.QueryRow(ctx, rackSelect+` WHERE r.store_id = $1 AND r.rack_number = $2`, storeID, rackNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack by number: %w", err)
	}
	return rk, nil
}

// Create persiste un rack.
func (r *RackRepo) Create(ctx context.Context, rk *entity.Rack) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO racks (id, rack_number, store_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rk.ID, rk.RackNumber, rk.StoreID, rk.Description, rk.Status, rk.CreatedAt, rk.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rack: %w", mapWriteError(err, "Rack number already exists in this store", "rack"))
	}
	return nil
}

// Update actualiza número, descripción y estado.
func (r *RackRepo) Update(ctx context.Context, rk *entity.Rack) error {
	_, err := r.q.Exec(ctx,
		`UPDATE racks SET rack_number = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		rk.ID, rk.RackNumber, rk.Description, rk.Status, rk.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rack: %w", mapWriteError(err, "Rack number already exists in this store", "rack"))
	}
	return nil
}

// Delete elimina un rack.
func (r *RackRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM racks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete rack: %w", err)
	}
	return nil
}
