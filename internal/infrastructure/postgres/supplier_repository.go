package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, code, name, company_name, email, phone, address, city, country, contact_person, status, created_at, updated_at`

// supplierSearchColumns mapea el searchField del API a la columna.
var supplierSearchColumns = map[string]string{
	"name":        "name",
	"code":        "code",
	"email":       "email",
	"phone":       "phone",
	"companyName": "company_name",
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.CompanyName, &s.Email, &s.Phone, &s.Address,
		&s.City, &s.Country, &s.ContactPerson, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func supplierWhere(f repository.SupplierFilter) *whereBuilder {
	w := &whereBuilder{}
	if col, ok := supplierSearchColumns[f.SearchField]; ok {
		w.ILike(col, f.Search)
	} else {
		w.AnyILike([]string{"name", "code", "email", "company_name"}, f.Search)
	}
	w.Eq("status", f.Status)
	return w
}

// List lista proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter) ([]*entity.Supplier, error) {
	w := supplierWhere(f)
	where := w.SQL()
	page := w.Page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers`+where+` ORDER BY name ASC`+page, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count total filtrado.
func (r *SupplierRepo) Count(ctx context.Context, f repository.SupplierFilter) (int, error) {
	w := supplierWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`+w.SQL(), w.Args()...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if !isUUID(id) {
		return nil, nil
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// GetByCode busca por código.
func (r *SupplierRepo) GetByCode(ctx context.Context, code string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by code: %w", err)
	}
	return s, nil
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID, s.Code, s.Name, s.CompanyName, s.Email, s.Phone, s.Address,
		s.City, s.Country, s.ContactPerson, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", mapWriteError(err, "Supplier code already exists", "supplier"))
	}
	return nil
}

// Update actualiza todo salvo el código.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		UPDATE suppliers SET name = $2, company_name = $3, email = $4, phone = $5, address = $6,
		       city = $7, country = $8, contact_person = $9, status = $10, updated_at = $11
		WHERE id = $1`,
		s.ID, s.Name, s.CompanyName, s.Email, s.Phone, s.Address,
		s.City, s.Country, s.ContactPerson, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
