package repository

import (
	"context"
	"time"
)

// StatKind entidad contada por el agregador de estadísticas.
type StatKind string

const (
	StatParts      StatKind = "parts"
	StatCategories StatKind = "categories"
	StatKits       StatKind = "kits"
	StatSuppliers  StatKind = "suppliers"
)

// StatKinds orden estable de las series.
var StatKinds = []StatKind{StatParts, StatCategories, StatKits, StatSuppliers}

// StatsRepository cuenta filas activas creadas hasta un instante.
// inclusive=true usa created_at <= until; false usa created_at < until.
type StatsRepository interface {
	CountActive(ctx context.Context, kind StatKind, until time.Time, inclusive bool) (int, error)
}
