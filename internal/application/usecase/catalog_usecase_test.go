package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestBrandDelete_BloqueadaPorPartes(t *testing.T) {
	ctx := context.Background()
	brands := newFakeBrandRepo(&entity.Brand{ID: "b1", Name: "Bosch"})
	parts := newFakePartRepo(
		&entity.Part{ID: "p1", Brand: "Bosch"},
		&entity.Part{ID: "p2", Brand: "Bosch"},
		&entity.Part{ID: "p3", Brand: "Bosch"},
		&entity.Part{ID: "p4", Brand: "Denso"},
	)
	uc := NewBrandUseCase(brands, parts)

	err := uc.Delete(ctx, "b1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDependency))
	assert.Contains(t, err.Error(), "3")

	var depErr *domain.DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, 3, depErr.Count)
	assert.Empty(t, brands.deleted)
}

func TestBrandDelete_SinReferencias(t *testing.T) {
	brands := newFakeBrandRepo(&entity.Brand{ID: "b1", Name: "NGK"})
	uc := NewBrandUseCase(brands, newFakePartRepo(&entity.Part{ID: "p1", Brand: "Bosch"}))

	require.NoError(t, uc.Delete(context.Background(), "b1"))
	assert.Equal(t, []string{"b1"}, brands.deleted)
}

func TestBrandDelete_Inexistente(t *testing.T) {
	uc := NewBrandUseCase(newFakeBrandRepo(), newFakePartRepo())
	err := uc.Delete(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBrandCreate_Duplicada(t *testing.T) {
	uc := NewBrandUseCase(newFakeBrandRepo(&entity.Brand{ID: "b1", Name: "Bosch"}), newFakePartRepo())
	_, err := uc.Create(context.Background(), dto.CreateBrandRequest{Name: "bosch"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Contains(t, err.Error(), "Brand already exists")
}

func TestBrandCreate_EstadoPorDefecto(t *testing.T) {
	uc := NewBrandUseCase(newFakeBrandRepo(), newFakePartRepo())
	out, err := uc.Create(context.Background(), dto.CreateBrandRequest{Name: "  Denso "})
	require.NoError(t, err)
	assert.Equal(t, "Denso", out.Name)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestCategoryCreate_SubRequierePadrePrincipal(t *testing.T) {
	cats := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"m1": {ID: "m1", Name: "Engine", Type: entity.CategoryTypeMain},
		"s1": {ID: "s1", Name: "Filters", Type: entity.CategoryTypeSub, ParentID: strPtr("m1")},
	}}
	uc := NewCategoryUseCase(cats, newFakePartRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Oil", Type: entity.CategoryTypeSub})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Oil", Type: entity.CategoryTypeSub, ParentID: strPtr("s1")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Oil", Type: entity.CategoryTypeSub, ParentID: strPtr("zz")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	out, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Oil", Type: entity.CategoryTypeSub, ParentID: strPtr("m1")})
	require.NoError(t, err)
	require.NotNil(t, out.ParentID)
	assert.Equal(t, "m1", *out.ParentID)
}

func TestCategoryDelete_BloqueadaPorPartesOSubcategorias(t *testing.T) {
	cats := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"m1": {ID: "m1", Name: "Engine", Type: entity.CategoryTypeMain},
		"m2": {ID: "m2", Name: "Body", Type: entity.CategoryTypeMain},
		"s1": {ID: "s1", Name: "Filters", Type: entity.CategoryTypeSub, ParentID: strPtr("m2")},
	}}
	parts := newFakePartRepo(
		&entity.Part{ID: "p1", MainCategory: "Engine"},
		&entity.Part{ID: "p2", SubCategory: "Engine"},
	)
	uc := NewCategoryUseCase(cats, parts)
	ctx := context.Background()

	err := uc.Delete(ctx, "m1")
	var depErr *domain.DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, 2, depErr.Count)

	err = uc.Delete(ctx, "m2")
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, 1, depErr.Count)
	assert.Contains(t, err.Error(), "sub category")

	require.NoError(t, uc.Delete(ctx, "s1"))
	require.NoError(t, uc.Delete(ctx, "m2"))
}

func TestPartList_PaginacionPorDefecto(t *testing.T) {
	parts := newFakePartRepo()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		parts.parts[id] = &entity.Part{ID: id, PartNo: id}
	}
	uc := NewPartUseCase(parts, &fakeKitRepo{kits: map[string]*entity.Kit{}})

	out, err := uc.List(context.Background(), repository.PartFilter{Brand: "Bosch"}, dto.PageRequest{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxPageLimit, parts.lastFilter.Limit)
	assert.Equal(t, 0, parts.lastFilter.Offset)
	assert.Equal(t, "Bosch", parts.lastFilter.Brand)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 12, out.Pagination.Total)
	assert.Equal(t, 1, out.Pagination.TotalPages)

	out, err = uc.List(context.Background(), repository.PartFilter{}, dto.PageRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 10, parts.lastFilter.Offset)
	assert.Len(t, out.Parts, 2)
	assert.Equal(t, 2, out.Pagination.TotalPages)
}

func TestPartCreate_NumeroDuplicado(t *testing.T) {
	uc := NewPartUseCase(newFakePartRepo(&entity.Part{ID: "p1", PartNo: "OF-100"}), &fakeKitRepo{kits: map[string]*entity.Kit{}})
	_, err := uc.Create(context.Background(), dto.CreatePartRequest{PartNo: "OF-100"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestPartDelete_BloqueadaPorKits(t *testing.T) {
	kits := &fakeKitRepo{kits: map[string]*entity.Kit{
		"k1": {ID: "k1", Items: []entity.KitItem{{PartID: "p1", Quantity: 2}}},
	}}
	uc := NewPartUseCase(newFakePartRepo(&entity.Part{ID: "p1"}, &entity.Part{ID: "p2"}), kits)
	ctx := context.Background()

	err := uc.Delete(ctx, "p1")
	assert.True(t, errors.Is(err, domain.ErrDependency))
	assert.Contains(t, err.Error(), "1 kit item(s)")
	require.NoError(t, uc.Delete(ctx, "p2"))
}

func TestSupplierList_SearchFieldInvalido(t *testing.T) {
	uc := NewSupplierUseCase(&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}})
	_, err := uc.List(context.Background(), repository.SupplierFilter{Search: "x", SearchField: "address"}, dto.PageRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.List(context.Background(), repository.SupplierFilter{Search: "x", SearchField: "companyName"}, dto.PageRequest{})
	assert.NoError(t, err)
}

func TestSupplierCreate_CodigoDuplicado(t *testing.T) {
	uc := NewSupplierUseCase(&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Code: "SUP-01"},
	}})
	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Code: "SUP-01", Name: "Otro"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestRackCreate(t *testing.T) {
	stores := &fakeStoreRepo{stores: map[string]*entity.Store{"st1": {ID: "st1", Code: "MAIN", Name: "Principal"}}}
	racks := &fakeRackRepo{racks: map[string]*entity.Rack{}}
	uc := NewStoreUseCase(stores, racks)
	ctx := context.Background()

	_, err := uc.CreateRack(ctx, dto.CreateRackRequest{RackNumber: "R-1", StoreID: "missing"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	out, err := uc.CreateRack(ctx, dto.CreateRackRequest{RackNumber: "R-1", StoreID: "st1"})
	require.NoError(t, err)
	require.NotNil(t, out.Store)
	assert.Equal(t, "MAIN", out.Store.Code)

	_, err = uc.CreateRack(ctx, dto.CreateRackRequest{RackNumber: "R-1", StoreID: "st1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestKitCreate_CalculaCostoYUsaTransaccion(t *testing.T) {
	parts := newFakePartRepo(
		&entity.Part{ID: "p1", PartNo: "OF-1", Cost: decimal.RequireFromString("12.50")},
		&entity.Part{ID: "p2", PartNo: "SP-4", Cost: decimal.RequireFromString("3.25")},
	)
	kits := &fakeKitRepo{kits: map[string]*entity.Kit{}}
	tx := &fakeKitTx{repo: kits}
	uc := NewKitUseCase(kits, parts, tx)

	out, err := uc.Create(context.Background(), dto.CreateKitRequest{
		BadgeNo: "KIT-1",
		Name:    "Service kit",
		Items:   []dto.KitItemRequest{{PartID: "p1", Quantity: 1}, {PartID: "p2", Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.True(t, decimal.RequireFromString("25.50").Equal(out.TotalCost), out.TotalCost.String())
	require.Len(t, out.Items, 2)
	assert.Equal(t, "SP-4", out.Items[1].Part.PartNo)
	assert.Len(t, kits.kits, 1)
}

func TestKitCreate_ParteInexistenteNoAbreTransaccion(t *testing.T) {
	kits := &fakeKitRepo{kits: map[string]*entity.Kit{}}
	tx := &fakeKitTx{repo: kits}
	uc := NewKitUseCase(kits, newFakePartRepo(), tx)

	_, err := uc.Create(context.Background(), dto.CreateKitRequest{
		BadgeNo: "KIT-1", Name: "x", Items: []dto.KitItemRequest{{PartID: "ghost", Quantity: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 0, tx.calls)
	assert.Empty(t, kits.kits)
}

func TestUpdate_NombreEnBlancoEsInvalido(t *testing.T) {
	ctx := context.Background()
	blank := strPtr("   ")

	brands := newFakeBrandRepo(&entity.Brand{ID: "b1", Name: "Bosch"})
	_, err := NewBrandUseCase(brands, newFakePartRepo()).Update(ctx, "b1", dto.UpdateBrandRequest{Name: blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name is required")
	assert.Equal(t, "Bosch", brands.brands["b1"].Name)

	cats := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"m1": {ID: "m1", Name: "Engine", Type: entity.CategoryTypeMain},
	}}
	_, err = NewCategoryUseCase(cats, newFakePartRepo()).Update(ctx, "m1", dto.UpdateCategoryRequest{Name: blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Engine", cats.categories["m1"].Name)

	parts := newFakePartRepo(&entity.Part{ID: "p1", PartNo: "OF-100"})
	_, err = NewPartUseCase(parts, &fakeKitRepo{kits: map[string]*entity.Kit{}}).Update(ctx, "p1", dto.UpdatePartRequest{PartNo: blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "partNo is required")
	assert.Equal(t, "OF-100", parts.parts["p1"].PartNo)

	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{"s1": {ID: "s1", Code: "SUP-01", Name: "Acme"}}}
	_, err = NewSupplierUseCase(suppliers).Update(ctx, "s1", dto.UpdateSupplierRequest{Name: blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Acme", suppliers.suppliers["s1"].Name)

	racks := &fakeRackRepo{racks: map[string]*entity.Rack{"r1": {ID: "r1", RackNumber: "R-1", StoreID: "st1"}}}
	_, err = NewStoreUseCase(&fakeStoreRepo{stores: map[string]*entity.Store{}}, racks).UpdateRack(ctx, "r1", dto.UpdateRackRequest{RackNumber: blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "R-1", racks.racks["r1"].RackNumber)
}

func TestUpdate_NombreRecortado(t *testing.T) {
	brands := newFakeBrandRepo(&entity.Brand{ID: "b1", Name: "Bosch"})
	out, err := NewBrandUseCase(brands, newFakePartRepo()).Update(context.Background(), "b1", dto.UpdateBrandRequest{Name: strPtr("  Denso ")})
	require.NoError(t, err)
	assert.Equal(t, "Denso", out.Name)
}

func TestCreate_CamposEnBlanco(t *testing.T) {
	ctx := context.Background()

	_, err := NewSupplierUseCase(&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}).
		Create(ctx, dto.CreateSupplierRequest{Code: "SUP-02", Name: " \t"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	stores := &fakeStoreRepo{stores: map[string]*entity.Store{"st1": {ID: "st1", Code: "MAIN"}}}
	uc := NewStoreUseCase(stores, &fakeRackRepo{racks: map[string]*entity.Rack{}})
	_, err = uc.CreateStore(ctx, dto.CreateStoreRequest{Code: "  ", Name: "Norte"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateRack(ctx, dto.CreateRackRequest{RackNumber: "  ", StoreID: "st1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
