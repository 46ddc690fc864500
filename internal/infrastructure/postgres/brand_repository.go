package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

const brandColumns = `id, name, status, created_at, updated_at`

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// List lista marcas por nombre ascendente.
func (r *BrandRepo) List(ctx context.Context, f repository.BrandFilter) ([]*entity.Brand, error) {
	w := &whereBuilder{}
	w.Eq("status", f.Status).ILike("name", f.Search)
	rows, err := r.q.Query(ctx, `SELECT `+brandColumns+` FROM brands`+w.SQL()+` ORDER BY name ASC`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Brand, 0)
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetByID obtiene una marca por ID; nil si no existe.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)
}

// GetByName busca por nombre sin distinguir mayúsculas.
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return r.getOne(ctx, `SELECT `+brandColumns+` FROM brands WHERE lower(name) = lower($1)`, name)
}

func (r *BrandRepo) getOne(ctx context.Context, query string, arg string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx, query, arg).Scan(&b.ID, &b.Name, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// Create persiste una marca.
func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO brands (id, name, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert brand: %w", mapWriteError(err, "Brand already exists", "brand"))
	}
	return nil
}

// Update actualiza nombre y estado.
func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	_, err := r.q.Exec(ctx,
		`UPDATE brands SET name = $2, status = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Name, b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update brand: %w", mapWriteError(err, "Brand already exists", "brand"))
	}
	return nil
}

// Delete elimina una marca por ID.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
