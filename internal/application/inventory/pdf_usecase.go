package inventory

import (
	"context"
	"fmt"
)

// AdjustmentPDFUseCase genera el comprobante PDF de un ajuste existente.
type AdjustmentPDFUseCase struct {
	adjustments *AdjustmentUseCase
	generator   AdjustmentPDFGenerator
}

// NewAdjustmentPDFUseCase construye el caso de uso.
func NewAdjustmentPDFUseCase(adjustments *AdjustmentUseCase, generator AdjustmentPDFGenerator) *AdjustmentPDFUseCase {
	return &AdjustmentPDFUseCase{adjustments: adjustments, generator: generator}
}

// Generate devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *AdjustmentPDFUseCase) Generate(ctx context.Context, id string) ([]byte, string, error) {
	adj, err := uc.adjustments.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateAdjustmentPDF(adj)
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf del ajuste: %w", err)
	}
	name := adj.ID
	if adj.AdjustmentNo != nil && *adj.AdjustmentNo != "" {
		name = *adj.AdjustmentNo
	}
	return pdf, fmt.Sprintf("ajuste-%s.pdf", name), nil
}
