// Package analytics contiene los casos de uso de lectura agregada: contadores del
// dashboard con sparklines y el cierre contable diario.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

const (
	sparklineDays  = 14
	comparisonDays = 30
	// consultas de conteo simultáneas contra el pool
	maxParallelCounts = 8
)

// StatsUseCase calcula los contadores del dashboard y sus series de 14 días.
type StatsUseCase struct {
	repo repository.StatsRepository
	now  func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo, now: time.Now}
}

type series struct {
	current  int
	previous int
	days     []int
}

// GetStats ejecuta en paralelo (acotado) los conteos de las cuatro entidades:
// actual, hace 30 días (created_at <= corte) y el acumulado al cierre de cada uno de los
// últimos 14 días (created_at < inicio del día siguiente).
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	now := uc.now()
	prevCutoff := now.AddDate(0, 0, -comparisonDays)
	cutoffs := sparklineCutoffs(now)

	results := make(map[repository.StatKind]*series, len(repository.StatKinds))
	for _, k := range repository.StatKinds {
		results[k] = &series{days: make([]int, sparklineDays)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCounts)
	for _, kind := range repository.StatKinds {
		s := results[kind]
		g.Go(func() error {
			n, err := uc.repo.CountActive(gctx, kind, now, true)
			if err != nil {
				return fmt.Errorf("stats %s actual: %w", kind, err)
			}
			s.current = n
			return nil
		})
		g.Go(func() error {
			n, err := uc.repo.CountActive(gctx, kind, prevCutoff, true)
			if err != nil {
				return fmt.Errorf("stats %s previo: %w", kind, err)
			}
			s.previous = n
			return nil
		})
		for i, cutoff := range cutoffs {
			g.Go(func() error {
				n, err := uc.repo.CountActive(gctx, kind, cutoff, false)
				if err != nil {
					return fmt.Errorf("stats %s día %d: %w", kind, i, err)
				}
				s.days[i] = n
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	value := func(k repository.StatKind) dto.StatValue {
		s := results[k]
		return dto.StatValue{Current: s.current, Previous: s.previous, ChangePercent: ChangePercent(s.current, s.previous)}
	}
	line := func(k repository.StatKind) []int {
		return ClampNonDecreasing(results[k].days)
	}
	return &dto.StatsResponse{
		Stats: dto.Stats{
			Parts:      value(repository.StatParts),
			Categories: value(repository.StatCategories),
			Kits:       value(repository.StatKits),
			Suppliers:  value(repository.StatSuppliers),
		},
		Sparklines: dto.Sparklines{
			Parts:      line(repository.StatParts),
			Categories: line(repository.StatCategories),
			Kits:       line(repository.StatKits),
			Suppliers:  line(repository.StatSuppliers),
		},
	}, nil
}

// sparklineCutoffs inicio del día siguiente para cada uno de los últimos 14 días, el más antiguo primero.
// El último corte es la medianoche de mañana.
func sparklineCutoffs(now time.Time) []time.Time {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]time.Time, sparklineDays)
	for i := 0; i < sparklineDays; i++ {
		day := startOfToday.AddDate(0, 0, i-(sparklineDays-1))
		out[i] = day.AddDate(0, 0, 1)
	}
	return out
}

// ChangePercent variación entera respecto al valor previo. 0/0 = 0 y x/0 = 100.
func ChangePercent(current, previous int) int {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// ClampNonDecreasing eleva cada valor al anterior si bajaría. Devuelve una copia.
func ClampNonDecreasing(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	for i := 1; i < len(out); i++ {
		if out[i] < out[i-1] {
			out[i] = out[i-1]
		}
	}
	return out
}
