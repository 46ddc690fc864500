package repository

import (
	"context"
	"time"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// LedgerRepository lecturas de contabilidad para el cierre diario.
type LedgerRepository interface {
	// AccountMovements devuelve por cuenta el saldo antes de dayStart y los movimientos
	// de comprobantes contabilizados en [dayStart, dayEnd).
	AccountMovements(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.AccountMovement, error)
}
