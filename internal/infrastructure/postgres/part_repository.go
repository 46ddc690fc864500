package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// partSelect incluye la cantidad en stock (0 si la parte no tiene fila en stock).
const partSelect = `
	SELECT p.id, p.part_no, p.master_part_no, p.description, p.brand, p.main_category, p.sub_category,
	       p.origin, p.grade, p.uom, p.cost, p.price_a, p.price_b, p.status,
	       COALESCE(s.quantity, 0), p.created_at, p.updated_at
	FROM parts p
	LEFT JOIN stock s ON s.part_id = p.id`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(&p.ID, &p.PartNo, &p.MasterPartNo, &p.Description, &p.Brand, &p.MainCategory, &p.SubCategory,
		&p.Origin, &p.Grade, &p.UOM, &p.Cost, &p.PriceA, &p.PriceB, &p.Status,
		&p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func partWhere(f repository.PartFilter) *whereBuilder {
	w := &whereBuilder{}
	w.Eq("p.status", f.Status).
		AnyILike([]string{"p.part_no", "p.master_part_no", "p.description"}, f.Search).
		Eq("p.brand", f.Brand).
		Eq("p.main_category", f.MainCategory).
		Eq("p.origin", f.Origin).
		Eq("p.grade", f.Grade)
	return w
}

// List lista partes, más recientes primero.
func (r *PartRepo) List(ctx context.Context, f repository.PartFilter) ([]*entity.Part, error) {
	w := partWhere(f)
	where := w.SQL()
	page := w.Page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, partSelect+where+` ORDER BY p.created_at DESC`+page, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count total de partes que cumplen el filtro.
func (r *PartRepo) Count(ctx context.Context, f repository.PartFilter) (int, error) {
	w := partWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM parts p`+w.SQL(), w.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count parts: %w", err)
	}
	return n, nil
}

// GetByID obtiene una parte con su stock; nil si no existe.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanPart(r.q.QueryRow(ctx, partSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetByPartNo busca por número de parte exacto.
func (r *PartRepo) GetByPartNo(ctx context.Context, partNo string) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, partSelect+` WHERE p.part_no = $1`, partNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part by number: %w", err)
	}
	return p, nil
}

// Create persiste una parte. El stock nace en 0 (sin fila).
func (r *PartRepo) Create(ctx context.Context, p *entity.Part) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO parts (id, part_no, master_part_no, description, brand, main_category, sub_category,
		                   origin, grade, uom, cost, price_a, price_b, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.PartNo, p.MasterPartNo, p.Description, p.Brand, p.MainCategory, p.SubCategory,
		p.Origin, p.Grade, p.UOM, p.Cost, p.PriceA, p.PriceB, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part: %w", mapWriteError(err, "Part number already exists", "part"))
	}
	return nil
}

// Update actualiza los datos de catálogo. No toca stock (se maneja vía ajustes).
func (r *PartRepo) Update(ctx context.Context, p *entity.Part) error {
	_, err := r.q.Exec(ctx, `
		UPDATE parts SET part_no = $2, master_part_no = $3, description = $4, brand = $5, main_category = $6,
		       sub_category = $7, origin = $8, grade = $9, uom = $10, cost = $11, price_a = $12, price_b = $13,
		       status = $14, updated_at = $15
		WHERE id = $1`,
		p.ID, p.PartNo, p.MasterPartNo, p.Description, p.Brand, p.MainCategory,
		p.SubCategory, p.Origin, p.Grade, p.UOM, p.Cost, p.PriceA, p.PriceB,
		p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", mapWriteError(err, "Part number already exists", "part"))
	}
	return nil
}

// Delete elimina una parte; su fila de stock cae en cascada.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete part: %w", mapWriteError(err, "", "part"))
	}
	return nil
}

// CountByBrand partes que referencian la marca por nombre.
func (r *PartRepo) CountByBrand(ctx context.Context, brandName string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM parts WHERE brand = $1`, brandName).Scan(&n); err != nil {
		return 0, fmt.Errorf("count parts by brand: %w", err)
	}
	return n, nil
}

// CountByCategory partes que usan el nombre como categoría principal o subcategoría.
func (r *PartRepo) CountByCategory(ctx context.Context, categoryName string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM parts WHERE main_category = $1 OR sub_category = $1`, categoryName).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count parts by category: %w", err)
	}
	return n, nil
}
