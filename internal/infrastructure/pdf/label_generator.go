// Package pdf genera las etiquetas de producto en PDF con Maroto v2.
//
// Cada etiqueta ocupa un bloque en la hoja A4:
//
//	┌──────────────────────────────────────────────┐
//	│  PRODUTO (nombre)                 SKU        │
//	│  Fabricação: dd/mm/aaaa   Validade: dd/mm/aaaa│
//	│  Lote: XXXXX                                 │
//	│  ||||||||||||| código de barras |||||||||||| │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Padaria-api/internal/application/labels"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 70, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LabelGenerator implementa labels.PDFGenerator usando Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabels genera label.Copies etiquetas iguales y devuelve los bytes del PDF.
func (g *LabelGenerator) GenerateLabels(label labels.Label) ([]byte, error) {
	if label.Product == nil || label.Copies < 1 {
		return nil, fmt.Errorf("pdf: etiqueta sin produto o sin cópias")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas "+label.Product.Name, true).
		Build()

	m := maroto.New(cfg)
	block := labelRows(label)
	for i := 0; i < label.Copies; i++ {
		m.AddRows(block...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

func labelRows(label labels.Label) []core.Row {
	p := label.Product
	rows := []core.Row{
		row.New(9).Add(
			col.New(9).Add(text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			})),
			col.New(3).Add(text.New(p.SKU, props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			})),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Fabricação: "+label.ProductionDate, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New("Validade: "+label.ExpiryDate, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New("Lote: "+label.Lot, props.Text{Size: 9, Top: 1})),
		),
	}
	if p.SKU != "" {
		rows = append(rows, row.New(16).Add(
			col.New(2),
			code.NewBarCol(8, p.SKU, props.Barcode{Percent: 90, Center: true}),
			col.New(2),
		))
	}
	return append(rows,
		row.New(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}),
		row.New(3),
	)
}
