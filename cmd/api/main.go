package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/analytics"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/filestore"
	infrapdf "github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/pdf"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/postgres"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/upstream"
	httpRouter "github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/interfaces/http"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/config"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	for _, key := range cfg.Fallbacks {
		log.Warn().Str("key", key).Msg("usando valor de desarrollo inseguro")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	rackRepo := postgres.NewRackRepository(pool)
	kitRepo := postgres.NewKitRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	adjustmentUC := inventory.NewAdjustmentUseCase(txRunner, adjustmentRepo, partRepo)
	pdfGenerator := infrapdf.NewAdjustmentPDFGenerator(cfg.App.Name)

	loginUC := auth.NewLoginUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	errWriter := httpRouter.NewErrorWriter(log, cfg.App.IsProduction(), 30*time.Second)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Upstream.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errWriter.Handler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Crystal Trading API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		Verifier:    auth.NewTokenVerifier(cfg.JWT.Secret),
		LoginUC:     loginUC,
		BrandUC:     usecase.NewBrandUseCase(brandRepo, partRepo),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo, partRepo),
		PartUC:      usecase.NewPartUseCase(partRepo, kitRepo),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo),
		StoreUC:     usecase.NewStoreUseCase(storeRepo, rackRepo),
		KitUC:       usecase.NewKitUseCase(kitRepo, partRepo, txRunner),
		AdjustUC:    adjustmentUC,
		AdjustPDFUC: inventory.NewAdjustmentPDFUseCase(adjustmentUC, pdfGenerator),
		TransferUC:  inventory.NewTransferUseCase(filestore.NewTransferStore(cfg.Transfer.StorePath)),
		StatsUC:     analytics.NewStatsUseCase(postgres.NewStatsRepository(pool)),
		ClosingUC:   analytics.NewDailyClosingUseCase(postgres.NewLedgerRepository(pool)),
		Gateway:     upstream.NewHTTPGateway(cfg.Upstream.BaseURL, cfg.Upstream.Timeout),
		Errors:      errWriter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
