// Package inventory contiene servicios de dominio sin dependencias de infraestructura.
package inventory

import "github.com/shopspring/decimal"

// CostLine costo unitario de una parte y la cantidad que aporta a un kit.
type CostLine struct {
	UnitCost decimal.Decimal
	Quantity int
}

// KitCost suma costo unitario × cantidad de cada línea.
// TotalCost = Σ (UnitCost × Quantity)
func KitCost(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
