package inventory

import (
	"context"
	"strings"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/dto"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

// TransferUseCase traslados de stock sobre el almacenamiento en archivo.
// No mueve cantidades de stock: solo registra el documento.
type TransferUseCase struct {
	store TransferStore
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(store TransferStore) *TransferUseCase {
	return &TransferUseCase{store: store}
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Transfers  []entity.StockTransfer `json:"transfers"`
	Pagination dto.Pagination         `json:"pagination"`
}

// List devuelve una página de traslados, más recientes primero.
func (uc *TransferUseCase) List(ctx context.Context, page dto.PageRequest) (*TransferListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.store.List(ctx, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []entity.StockTransfer{}
	}
	return &TransferListResponse{Transfers: list, Pagination: dto.NewPagination(page, total)}, nil
}

// Create registra un traslado. Estado por defecto: draft.
func (uc *TransferUseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*entity.StockTransfer, error) {
	if strings.TrimSpace(in.TransferNo) == "" {
		return nil, domain.Invalid("transferNo is required")
	}
	if strings.TrimSpace(in.TransferDate) == "" {
		return nil, domain.Invalid("transferDate is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items are required")
	}
	status := in.Status
	if status == "" {
		status = entity.TransferStatusDraft
	}
	t := entity.StockTransfer{
		TransferNo:   strings.TrimSpace(in.TransferNo),
		TransferDate: in.TransferDate,
		Status:       status,
		Notes:        in.Notes,
		FromStoreID:  in.FromStoreID,
		ToStoreID:    in.ToStoreID,
	}
	for _, it := range in.Items {
		t.Items = append(t.Items, entity.StockTransferItem{
			PartID:      it.PartID,
			PartNo:      it.PartNo,
			Description: it.Description,
			Quantity:    it.Quantity,
			FromRackID:  it.FromRackID,
			ToRackID:    it.ToRackID,
		})
	}
	return uc.store.Create(ctx, t)
}
