package inventory

import (
	"context"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error nada de lo escrito queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		adjRepo repository.AdjustmentRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// TransferStore persistencia de traslados de stock (archivo JSON, sin tabla todavía).
type TransferStore interface {
	// List devuelve la página pedida ordenada por createdAt descendente y el total.
	List(ctx context.Context, page, limit int) ([]entity.StockTransfer, int, error)
	// Create asigna id y marcas de tiempo y agrega el traslado.
	Create(ctx context.Context, t entity.StockTransfer) (*entity.StockTransfer, error)
}

// AdjustmentPDFGenerator genera el comprobante PDF de un ajuste.
type AdjustmentPDFGenerator interface {
	GenerateAdjustmentPDF(adj *entity.InventoryAdjustment) ([]byte, error)
}
