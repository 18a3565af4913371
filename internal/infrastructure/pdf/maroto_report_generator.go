// Package pdf implementa la generación del reporte de stock y auditoría.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GameTech Stock  │  Fecha de emisión                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Stock | Mín | Crít  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: una línea de auditoría por movimiento           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/gametechlabs/stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa reports.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	products []*entity.Product,
	movements []entity.Movement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(productTableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(historyTitleRow(len(movements)))
	for _, mov := range movements {
		m.AddRows(auditRow(mov))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de emisión (der).
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("GameTech Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de stock y auditoría", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func productTableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Código", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(1).Add(text.New("Stock", header)),
		col.New(1).Add(text.New("Mín", header)),
		col.New(2).Add(text.New("Estado", header)),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	status := "OK"
	statusProps := props.Text{Size: 8, Top: 1, Color: colorGray}
	if p.IsCritical() {
		status = "CRÍTICO"
		statusProps = props.Text{Size: 8, Top: 1, Style: fontstyle.Bold, Color: colorAlert}
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(p.Code, cell)),
		col.New(4).Add(text.New(p.Name, cell)),
		col.New(2).Add(text.New(p.Category, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinThreshold), cell)),
		col.New(2).Add(text.New(status, statusProps)),
	)
}

func historyTitleRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("HISTORIAL DE MOVIMIENTOS (%d)", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func auditRow(mov entity.Movement) core.Row {
	return row.New(5).Add(
		col.New(12).Add(
			text.New(mov.Audit(), props.Text{Size: 7, Top: 1, Color: colorGray}),
		),
	)
}
