package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// statTables tablas permitidas por tipo; nunca se interpola texto del cliente.
var statTables = map[repository.StatKind]string{
	repository.StatParts:      "parts",
	repository.StatCategories: "categories",
	repository.StatKits:       "kits",
	repository.StatSuppliers:  "suppliers",
}

// StatsRepo conteos de filas activas para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountActive cuenta filas con status = 'active' creadas hasta until.
func (r *StatsRepo) CountActive(ctx context.Context, kind repository.StatKind, until time.Time, inclusive bool) (int, error) {
	table, ok := statTables[kind]
	if !ok {
		return 0, fmt.Errorf("stats: tipo desconocido %q", kind)
	}
	op := "<"
	if inclusive {
		op = "<="
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE status = 'active' AND created_at %s $1`, table, op)
	var n int
	if err := r.q.QueryRow(ctx, query, until).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
