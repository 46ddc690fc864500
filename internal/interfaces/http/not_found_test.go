package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/postgres"
	apphttp "github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/interfaces/http"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/logger"
)

// uuidOnlyDB responde como Postgres ante un parámetro que no es uuid.
type uuidOnlyDB struct{ calls int }

var errInvalidUUIDText = &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}

func (d *uuidOnlyDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	d.calls++
	return pgconn.CommandTag{}, errInvalidUUIDText
}

func (d *uuidOnlyDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	d.calls++
	return nil, errInvalidUUIDText
}

func (d *uuidOnlyDB) QueryRow(context.Context, string, ...any) pgx.Row {
	d.calls++
	return invalidUUIDRow{}
}

type invalidUUIDRow struct{}

func (invalidUUIDRow) Scan(...any) error { return errInvalidUUIDText }

// pgTx ejecuta fn con repositorios de Postgres sobre la misma base falsa.
type pgTx struct {
	db   *uuidOnlyDB
	runs int
}

func (tx *pgTx) Run(_ context.Context, fn func(repository.AdjustmentRepository, repository.StockRepository) error) error {
	tx.runs++
	return fn(postgres.NewAdjustmentRepository(tx.db), postgres.NewStockRepository(tx.db))
}

type postgresFixture struct {
	app *fiber.App
	db  *uuidOnlyDB
	tx  *pgTx
}

// newPostgresFixture monta el router sobre los repositorios reales de Postgres.
func newPostgresFixture(t *testing.T) *postgresFixture {
	t.Helper()
	db := &uuidOnlyDB{}
	tx := &pgTx{db: db}
	errs := apphttp.NewErrorWriter(logger.Nop(), false, time.Minute)
	app := fiber.New(fiber.Config{ErrorHandler: errs.Handler})
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "crystal-test",
		Verifier:    auth.NewTokenVerifier(testJWTSecret),
		BrandUC:     usecase.NewBrandUseCase(postgres.NewBrandRepository(db), postgres.NewPartRepository(db)),
		StoreUC:     usecase.NewStoreUseCase(postgres.NewStoreRepository(db), postgres.NewRackRepository(db)),
		AdjustUC:    inventory.NewAdjustmentUseCase(tx, postgres.NewAdjustmentRepository(db), postgres.NewPartRepository(db)),
		Gateway:     &fakeGateway{},
		Errors:      errs,
	})
	return &postgresFixture{app: app, db: db, tx: tx}
}

func TestGetBrand_IDMalformadoEs404(t *testing.T) {
	f := newPostgresFixture(t)

	resp, body := do(t, f.app, http.MethodGet, "/api/brands/not-a-uuid", bearer(t), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Brand not found", body["error"])
	assert.Zero(t, f.db.calls)
}

func TestCreateRack_TiendaMalformadaEs404(t *testing.T) {
	f := newPostgresFixture(t)

	resp, body := do(t, f.app, http.MethodPost, "/api/racks", bearer(t), `{"rackNumber":"R-1","storeId":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Store not found", body["error"])
	assert.Zero(t, f.db.calls)
}

func TestGetRack_IDMalformadoEs404(t *testing.T) {
	f := newPostgresFixture(t)

	resp, _ := do(t, f.app, http.MethodGet, "/api/racks/x", bearer(t), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAdjustment_ParteInexistenteEs404SinTransaccion(t *testing.T) {
	f := newPostgresFixture(t)

	body := `{"items":[{"partId":"ghost","partNo":"GH-1","previousQuantity":0,"adjustedQuantity":2}]}`
	resp, out := do(t, f.app, http.MethodPost, "/api/inventory-adjustments", bearer(t), body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Part not found: items[0].partId", out["error"])
	assert.Zero(t, f.tx.runs)
	assert.Zero(t, f.db.calls)
}
