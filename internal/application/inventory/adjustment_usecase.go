package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/repository"
)

// AdjustmentUseCase registra ajustes manuales de stock de forma transaccional.
//
// Carrera conocida: previousQuantity lo envía el cliente y no se relee el stock dentro de la
// transacción ni se bloquea la fila. Dos ajustes concurrentes sobre la misma parte pueden
// perder uno de los dos (gana el último en escribir).
type AdjustmentUseCase struct {
	txRunner TxRunner
	adjRepo  repository.AdjustmentRepository
	partRepo repository.PartRepository
	now      func() time.Time
}

// NewAdjustmentUseCase construye el caso de uso. adjRepo y partRepo se usan para lecturas fuera de transacción.
func NewAdjustmentUseCase(txRunner TxRunner, adjRepo repository.AdjustmentRepository, partRepo repository.PartRepository) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner, adjRepo: adjRepo, partRepo: partRepo, now: time.Now}
}

// Create valida, calcula newQuantity = previousQuantity + adjustedQuantity por ítem y, en una sola
// transacción, inserta cabecera e ítems, fija el stock de cada ítem con partId y relee el ajuste.
func (uc *AdjustmentUseCase) Create(ctx context.Context, createdBy string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items are required")
	}
	now := uc.now()
	date, err := parseAdjustmentDate(in.Date, now)
	if err != nil {
		return nil, err
	}

	adj := &entity.InventoryAdjustment{
		ID:           uuid.New().String(),
		AdjustmentNo: in.AdjustmentNo,
		Total:        in.Total,
		Date:         date,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != "" {
		adj.CreatedBy = &createdBy
	}
	for i, it := range in.Items {
		partID := it.PartID
		if partID != nil && strings.TrimSpace(*partID) == "" {
			partID = nil
		}
		if partID != nil {
			part, err := uc.partRepo.GetByID(ctx, *partID)
			if err != nil {
				return nil, err
			}
			if part == nil {
				return nil, domain.NotFound("Part not found: items[%d].partId", i)
			}
		}
		adj.Items = append(adj.Items, entity.AdjustmentItem{
			ID:               uuid.New().String(),
			AdjustmentID:     adj.ID,
			PartID:           partID,
			PartNo:           it.PartNo,
			Description:      it.Description,
			PreviousQuantity: it.PreviousQuantity,
			AdjustedQuantity: it.AdjustedQuantity,
			NewQuantity:      it.PreviousQuantity + it.AdjustedQuantity,
			Reason:           it.Reason,
		})
	}

	var saved *entity.InventoryAdjustment
	err = uc.txRunner.Run(ctx, func(adjRepo repository.AdjustmentRepository, stockRepo repository.StockRepository) error {
		if err := adjRepo.Create(ctx, adj); err != nil {
			return err
		}
		// sobrescribe, no incrementa: newQuantity ya incluye el valor previo
		for _, item := range adj.Items {
			if item.PartID == nil {
				continue
			}
			if err := stockRepo.Set(ctx, *item.PartID, item.NewQuantity); err != nil {
				return err
			}
		}
		reloaded, err := adjRepo.GetByID(ctx, adj.ID)
		if err != nil {
			return err
		}
		saved = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = adj
	}
	out := ToAdjustmentResponse(saved)
	return &out, nil
}

// List devuelve una página de ajustes, más recientes primero.
func (uc *AdjustmentUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.AdjustmentListResponse, error) {
	page.DefaultPage()
	list, err := uc.adjRepo.List(ctx, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, err
	}
	total, err := uc.adjRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToAdjustmentResponse(a))
	}
	return &dto.AdjustmentListResponse{Adjustments: out, Pagination: dto.NewPagination(page, total)}, nil
}

// GetByID obtiene un ajuste con sus ítems.
func (uc *AdjustmentUseCase) GetByID(ctx context.Context, id string) (*dto.AdjustmentResponse, error) {
	adj, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToAdjustmentResponse(adj)
	return &out, nil
}

func (uc *AdjustmentUseCase) get(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	adj, err := uc.adjRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adj == nil {
		return nil, domain.NotFound("Inventory adjustment not found")
	}
	return adj, nil
}

// parseAdjustmentDate acepta RFC3339 o YYYY-MM-DD; vacío usa now.
func parseAdjustmentDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.Invalid("date must be RFC3339 or YYYY-MM-DD")
}

// ToAdjustmentResponse mapea la entidad al DTO de salida.
func ToAdjustmentResponse(a *entity.InventoryAdjustment) dto.AdjustmentResponse {
	items := make([]dto.AdjustmentItemResponse, 0, len(a.Items))
	for _, it := range a.Items {
		items = append(items, dto.AdjustmentItemResponse{
			ID:               it.ID,
			PartID:           it.PartID,
			PartNo:           it.PartNo,
			Description:      it.Description,
			PreviousQuantity: it.PreviousQuantity,
			AdjustedQuantity: it.AdjustedQuantity,
			NewQuantity:      it.NewQuantity,
			Reason:           it.Reason,
			Part:             usecase.ToPartSummary(it.Part),
		})
	}
	return dto.AdjustmentResponse{
		ID:           a.ID,
		AdjustmentNo: a.AdjustmentNo,
		Total:        a.Total,
		Date:         a.Date,
		Notes:        a.Notes,
		CreatedBy:    a.CreatedBy,
		Items:        items,
		CreatedAt:    a.CreatedAt,
	}
}
