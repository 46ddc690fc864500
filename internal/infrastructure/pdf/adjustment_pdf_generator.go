// Package pdf genera el comprobante imprimible de un ajuste de inventario.
//
// Layout A4:
//
//	HEADER: título + número de ajuste | fecha
//	NOTAS
//	TABLA: Parte | Descripción | Anterior | Ajuste | Nuevo | Motivo
//	TOTAL
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.AdjustmentPDFGenerator = (*AdjustmentPDFGenerator)(nil)

// AdjustmentPDFGenerator arma el comprobante con Maroto v2.
type AdjustmentPDFGenerator struct {
	printer *message.Printer
	author  string
}

// NewAdjustmentPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewAdjustmentPDFGenerator(author string) *AdjustmentPDFGenerator {
	return &AdjustmentPDFGenerator{
		printer: message.NewPrinter(language.English),
		author:  author,
	}
}

// GenerateAdjustmentPDF devuelve los bytes del documento.
func (g *AdjustmentPDFGenerator) GenerateAdjustmentPDF(adj *entity.InventoryAdjustment) ([]byte, error) {
	if adj == nil {
		return nil, fmt.Errorf("pdf: ajuste nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Adjustment", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(adj))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if adj.Notes != nil && *adj.Notes != "" {
		m.AddRows(notesRow(*adj.Notes))
	}
	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(adj.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(adj))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *AdjustmentPDFGenerator) headerRow(adj *entity.InventoryAdjustment) core.Row {
	number := adj.ID
	if adj.AdjustmentNo != nil && *adj.AdjustmentNo != "" {
		number = *adj.AdjustmentNo
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVENTORY ADJUSTMENT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d item(s)", len(adj.Items)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Date: "+adj.Date.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("NOTES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Part No", 2, align.Left),
		h("Description", 3, align.Left),
		h("Previous", 1, align.Right),
		h("Adjusted", 1, align.Right),
		h("New", 1, align.Right),
		h("Reason", 4, align.Left),
	)
}

func (g *AdjustmentPDFGenerator) itemRows(items []entity.AdjustmentItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			cell(it.PartNo, 2, align.Left),
			cell(deref(it.Description), 3, align.Left),
			cell(g.printer.Sprintf("%d", it.PreviousQuantity), 1, align.Right),
			cell(signed(g.printer, it.AdjustedQuantity), 1, align.Right),
			cell(g.printer.Sprintf("%d", it.NewQuantity), 1, align.Right),
			cell(deref(it.Reason), 4, align.Left),
		))
	}
	return rows
}

func (g *AdjustmentPDFGenerator) totalRow(adj *entity.InventoryAdjustment) core.Row {
	total, _ := adj.Total.Float64()
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(g.printer.Sprintf("%.2f", total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// signed antepone "+" a los ajustes positivos.
func signed(p *message.Printer, n int) string {
	if n > 0 {
		return p.Sprintf("+%d", n)
	}
	return p.Sprintf("%d", n)
}
