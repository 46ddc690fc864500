package usecase

import (
	"context"
	"strings"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

type fakeBrandRepo struct {
	brands  map[string]*entity.Brand
	deleted []string
}

func newFakeBrandRepo(brands ...*entity.Brand) *fakeBrandRepo {
	f := &fakeBrandRepo{brands: map[string]*entity.Brand{}}
	for _, b := range brands {
		f.brands[b.ID] = b
	}
	return f
}

func (f *fakeBrandRepo) List(context.Context, repository.BrandFilter) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBrandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	return f.brands[id], nil
}

func (f *fakeBrandRepo) GetByName(_ context.Context, name string) (*entity.Brand, error) {
	for _, b := range f.brands {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) Create(_ context.Context, b *entity.Brand) error {
	f.brands[b.ID] = b
	return nil
}

func (f *fakeBrandRepo) Update(_ context.Context, b *entity.Brand) error {
	f.brands[b.ID] = b
	return nil
}

func (f *fakeBrandRepo) Delete(_ context.Context, id string) error {
	delete(f.brands, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePartRepo struct {
	parts      map[string]*entity.Part
	lastFilter repository.PartFilter
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	f := &fakePartRepo{parts: map[string]*entity.Part{}}
	for _, p := range parts {
		f.parts[p.ID] = p
	}
	return f
}

func (f *fakePartRepo) List(_ context.Context, filter repository.PartFilter) ([]*entity.Part, error) {
	f.lastFilter = filter
	out := make([]*entity.Part, 0, len(f.parts))
	for _, p := range f.parts {
		out = append(out, p)
	}
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakePartRepo) Count(context.Context, repository.PartFilter) (int, error) {
	return len(f.parts), nil
}

func (f *fakePartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return f.parts[id], nil
}

func (f *fakePartRepo) GetByPartNo(_ context.Context, partNo string) (*entity.Part, error) {
	for _, p := range f.parts {
		if p.PartNo == partNo {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePartRepo) Create(_ context.Context, p *entity.Part) error {
	f.parts[p.ID] = p
	return nil
}

func (f *fakePartRepo) Update(_ context.Context, p *entity.Part) error {
	f.parts[p.ID] = p
	return nil
}

func (f *fakePartRepo) Delete(_ context.Context, id string) error {
	delete(f.parts, id)
	return nil
}

func (f *fakePartRepo) CountByBrand(_ context.Context, brand string) (int, error) {
	n := 0
	for _, p := range f.parts {
		if p.Brand == brand {
			n++
		}
	}
	return n, nil
}

func (f *fakePartRepo) CountByCategory(_ context.Context, name string) (int, error) {
	n := 0
	for _, p := range f.parts {
		if p.MainCategory == name || p.SubCategory == name {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (f *fakeCategoryRepo) List(context.Context, repository.CategoryFilter) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) GetByNameAndType(_ context.Context, name, typ string) (*entity.Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) && c.Type == typ {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) CountChildren(_ context.Context, parentID string) (int, error) {
	n := 0
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

type fakeKitRepo struct {
	kits map[string]*entity.Kit
}

func (f *fakeKitRepo) List(context.Context, repository.KitFilter) ([]*entity.Kit, error) {
	out := make([]*entity.Kit, 0, len(f.kits))
	for _, k := range f.kits {
		out = append(out, k)
	}
	return out, nil
}

func (f *fakeKitRepo) Count(context.Context, repository.KitFilter) (int, error) {
	return len(f.kits), nil
}

func (f *fakeKitRepo) GetByID(_ context.Context, id string) (*entity.Kit, error) {
	return f.kits[id], nil
}

func (f *fakeKitRepo) GetByBadgeNo(_ context.Context, badge string) (*entity.Kit, error) {
	for _, k := range f.kits {
		if k.BadgeNo == badge {
			return k, nil
		}
	}
	return nil, nil
}

func (f *fakeKitRepo) Create(_ context.Context, k *entity.Kit) error {
	f.kits[k.ID] = k
	return nil
}

func (f *fakeKitRepo) Delete(_ context.Context, id string) error {
	delete(f.kits, id)
	return nil
}

func (f *fakeKitRepo) CountItemsByPart(_ context.Context, partID string) (int, error) {
	n := 0
	for _, k := range f.kits {
		for _, it := range k.Items {
			if it.PartID == partID {
				n++
			}
		}
	}
	return n, nil
}

// fakeKitTx ejecuta fn sobre el mismo repositorio en memoria.
type fakeKitTx struct {
	repo  *fakeKitRepo
	calls int
}

func (f *fakeKitTx) RunKit(_ context.Context, fn func(repository.KitRepository) error) error {
	f.calls++
	return fn(f.repo)
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func (f *fakeStoreRepo) List(context.Context) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(f.stores))
	for _, s := range f.stores {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	return f.stores[id], nil
}

func (f *fakeStoreRepo) Create(_ context.Context, s *entity.Store) error {
	f.stores[s.ID] = s
	return nil
}

type fakeRackRepo struct {
	racks map[string]*entity.Rack
}

func (f *fakeRackRepo) List(context.Context, repository.RackFilter) ([]*entity.Rack, error) {
	out := make([]*entity.Rack, 0, len(f.racks))
	for _, r := range f.racks {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRackRepo) Count(context.Context, repository.RackFilter) (int, error) {
	return len(f.racks), nil
}

func (f *fakeRackRepo) GetByID(_ context.Context, id string) (*entity.Rack, error) {
	return f.racks[id], nil
}

func (f *fakeRackRepo) GetByStoreAndNumber(_ context.Context, storeID, number string) (*entity.Rack, error) {
	for _, r := range f.racks {
		if r.StoreID == storeID && r.RackNumber == number {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRackRepo) Create(_ context.Context, r *entity.Rack) error {
	f.racks[r.ID] = r
	return nil
}

func (f *fakeRackRepo) Update(_ context.Context, r *entity.Rack) error {
	f.racks[r.ID] = r
	return nil
}

func (f *fakeRackRepo) Delete(_ context.Context, id string) error {
	delete(f.racks, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) List(context.Context, repository.SupplierFilter) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Count(context.Context, repository.SupplierFilter) (int, error) {
	return len(f.suppliers), nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) GetByCode(_ context.Context, code string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(f.suppliers, id)
	return nil
}
