package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, type, parent_id, description, status, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Type, &c.ParentID, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// List lista categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
	w := &whereBuilder{}
	w.Eq("status", f.Status).Eq("type", f.Type)
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories`+w.SQL()+` ORDER BY name ASC`, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene una categoría; nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByNameAndType busca por nombre (sin mayúsculas) dentro de un tipo.
func (r *CategoryRepo) GetByNameAndType(ctx context.Context, name, categoryType string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE lower(name) = lower($1) AND type = $2`, name, categoryType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO categories (id, name, type, parent_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Type, c.ParentID, c.Description, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", mapWriteError(err, "Category already exists", "category"))
	}
	return nil
}

// Update actualiza nombre, descripción y estado.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", mapWriteError(err, "Category already exists", "category"))
	}
	return nil
}

// Delete elimina una categoría.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", mapWriteError(err, "", "category"))
	}
	return nil
}

// CountChildren subcategorías que cuelgan de parentID.
func (r *CategoryRepo) CountChildren(ctx context.Context, parentID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1`, parentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count child categories: %w", err)
	}
	return n, nil
}
