package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.KitRepository = (*KitRepo)(nil)

const kitColumns = `id, badge_no, name, description, selling_price, total_cost, status, created_at, updated_at`

// KitRepo implementación del puerto KitRepository sobre PostgreSQL.
type KitRepo struct {
	q Querier
}

// NewKitRepository construye el adaptador. Create debe correr dentro de una tx (ver TxRunner.RunKit).
func NewKitRepository(q Querier) *KitRepo {
	return &KitRepo{q: q}
}

func scanKit(row pgx.Row) (*entity.Kit, error) {
	var k entity.Kit
	err := row.Scan(&k.ID, &k.BadgeNo, &k.Name, &k.Description, &k.SellingPrice, &k.TotalCost, &k.Status, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func kitWhere(f repository.KitFilter) *whereBuilder {
	w := &whereBuilder{}
	w.AnyILike([]string{"badge_no", "name", "description"}, f.Search).Eq("status", f.Status)
	return w
}

// List lista kits (más recientes primero) con ítems y partes.
func (r *KitRepo) List(ctx context.Context, f repository.KitFilter) ([]*entity.Kit, error) {
	w := kitWhere(f)
	where := w.SQL()
	page := w.Page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+kitColumns+` FROM kits`+where+` ORDER BY created_at DESC`+page, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list kits: %w", err)
	}
	list := make([]*entity.Kit, 0)
	for rows.Next() {
		k, err := scanKit(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan kit: %w", err)
		}
		list = append(list, k)
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

// loadItems carga los ítems de todos los kits en una sola consulta.
func (r *KitRepo) loadItems(ctx context.Context, kits []*entity.Kit) error {
	if len(kits) == 0 {
		return nil
	}
	ids := make([]string, len(kits))
	byID := make(map[string]*entity.Kit, len(kits))
	for i, k := range kits {
		ids[i] = k.ID
		byID[k.ID] = k
		k.Items = []entity.KitItem{}
	}
	rows, err := r.q.Query(ctx, `
		SELECT ki.id, ki.kit_id, ki.part_id, ki.quantity,
		       p.id, p.part_no, p.description, p.brand, p.cost
		FROM kit_items ki
		JOIN parts p ON p.id = ki.part_id
		WHERE ki.kit_id = ANY($1)
		ORDER BY ki.position ASC`, ids)
	if err != nil {
		return fmt.Errorf("list kit items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.KitItem
		var p entity.Part
		if err := rows.Scan(&it.ID, &it.KitID, &it.PartID, &it.Quantity,
			&p.ID, &p.PartNo, &p.Description, &p.Brand, &p.Cost); err != nil {
			return fmt.Errorf("scan kit item: %w", err)
		}
		it.Part = &p
		if k, ok := byID[it.KitID]; ok {
			k.Items = append(k.Items, it)
		}
	}
	return rows.Err()
}

// Count total filtrado.
func (r *KitRepo) Count(ctx context.Context, f repository.KitFilter) (int, error) {
	w := kitWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM kits`+w.SQL(), w.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count kits: %w", err)
	}
	return n, nil
}

// GetByID obtiene un kit con ítems; nil si no existe.
func (r *KitRepo) GetByID(ctx context.Context, id string) (*entity.Kit, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+kitColumns+` FROM kits WHERE id = $1`, id)
}

// GetByBadgeNo busca por número de insignia.
func (r *KitRepo) GetByBadgeNo(ctx context.Context, badgeNo string) (*entity.Kit, error) {
	return r.getOne(ctx, `SELECT `+kitColumns+` FROM kits WHERE badge_no = $1`, badgeNo)
}

func (r *KitRepo) getOne(ctx context.Context, query, arg string) (*entity.Kit, error) {
	k, err := scanKit(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kit: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Kit{k}); err != nil {
		return nil, err
	}
	return k, nil
}

// Create inserta cabecera e ítems. Atomicidad a cargo del llamador (tx).
func (r *KitRepo) Create(ctx context.Context, k *entity.Kit) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO kits (`+kitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		k.ID, k.BadgeNo, k.Name, k.Description, k.SellingPrice, k.TotalCost, k.Status, k.CreatedAt, k.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kit: %w", mapWriteError(err, "Kit badge number already exists", "kit"))
	}
	for i, it := range k.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO kit_items (id, kit_id, part_id, quantity, position) VALUES ($1, $2, $3, $4, $5)`,
			it.ID, k.ID, it.PartID, it.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert kit item: %w", mapWriteError(err, "Duplicate kit item", "kit item"))
		}
	}
	return nil
}

// Delete elimina el kit; sus ítems caen en cascada.
func (r *KitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM kits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete kit: %w", err)
	}
	return nil
}

// CountItemsByPart ítems de kit que referencian la parte.
func (r *KitRepo) CountItemsByPart(ctx context.Context, partID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM kit_items WHERE part_id = $1`, partID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count kit items by part: %w", err)
	}
	return n, nil
}
