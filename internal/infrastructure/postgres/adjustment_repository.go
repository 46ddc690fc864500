package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

const adjustmentColumns = `id, adjustment_no, total, date, notes, created_by, created_at, updated_at`

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

func scanAdjustment(row pgx.Row) (*entity.InventoryAdjustment, error) {
	var a entity.InventoryAdjustment
	err := row.Scan(&a.ID, &a.AdjustmentNo, &a.Total, &a.Date, &a.Notes, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la cabecera y sus ítems en orden.
func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.InventoryAdjustment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventory_adjustments (`+adjustmentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.AdjustmentNo, a.Total, a.Date, a.Notes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", mapWriteError(err, "Adjustment number already exists", "adjustment"))
	}
	for i, it := range a.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO adjustment_items (id, adjustment_id, part_id, part_no, description,
			                              previous_quantity, adjusted_quantity, new_quantity, reason, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			it.ID, a.ID, it.PartID, it.PartNo, it.Description,
			it.PreviousQuantity, it.AdjustedQuantity, it.NewQuantity, it.Reason, i,
		)
		if err != nil {
			return fmt.Errorf("insert adjustment item %d: %w", i, mapWriteError(err, "Duplicate adjustment item", "adjustment item"))
		}
	}
	return nil
}

// GetByID obtiene la cabecera con ítems y la parte de cada ítem; nil si no existe.
func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	a, err := scanAdjustment(r.q.QueryRow(ctx, `SELECT `+adjustmentColumns+` FROM inventory_adjustments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.InventoryAdjustment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// List lista ajustes, más recientes primero, con sus ítems.
func (r *AdjustmentRepo) List(ctx context.Context, page repository.Page) ([]*entity.InventoryAdjustment, error) {
	w := &whereBuilder{}
	rows, err := r.q.Query(ctx,
		`SELECT `+adjustmentColumns+` FROM inventory_adjustments ORDER BY created_at DESC`+w.Page(page.Limit, page.Offset),
		w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	list := make([]*entity.InventoryAdjustment, 0)
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count total de ajustes.
func (r *AdjustmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_adjustments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return n, nil
}

func (r *AdjustmentRepo) loadItems(ctx context.Context, adjs []*entity.InventoryAdjustment) error {
	if len(adjs) == 0 {
		return nil
	}
	ids := make([]string, len(adjs))
	byID := make(map[string]*entity.InventoryAdjustment, len(adjs))
	for i, a := range adjs {
		ids[i] = a.ID
		byID[a.ID] = a
		a.Items = []entity.AdjustmentItem{}
	}
	rows, err := r.q.Query(ctx, `
		SELECT ai.id, ai.adjustment_id, ai.part_id, ai.part_no, ai.description,
		       ai.previous_quantity, ai.adjusted_quantity, ai.new_quantity, ai.reason,
		       p.id, p.part_no, p.description, p.brand
		FROM adjustment_items ai
		LEFT JOIN parts p ON p.id = ai.part_id
		WHERE ai.adjustment_id = ANY($1)
		ORDER BY ai.position ASC`, ids)
	if err != nil {
		return fmt.Errorf("list adjustment items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.AdjustmentItem
		var pID, pNo, pDesc, pBrand *string
		if err := rows.Scan(&it.ID, &it.AdjustmentID, &it.PartID, &it.PartNo, &it.Description,
			&it.PreviousQuantity, &it.AdjustedQuantity, &it.NewQuantity, &it.Reason,
			&pID, &pNo, &pDesc, &pBrand); err != nil {
			return fmt.Errorf("scan adjustment item: %w", err)
		}
		if pID != nil {
			it.Part = &entity.Part{ID: *pID, PartNo: deref(pNo), Description: deref(pDesc), Brand: deref(pBrand)}
		}
		if a, ok := byID[it.AdjustmentID]; ok {
			a.Items = append(a.Items, it)
		}
	}
	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
