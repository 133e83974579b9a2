// Package xlsx exporta el estoque a una planilla Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
)

var _ inventory.StockExporter = (*StockExporter)(nil)

const stockSheet = "Estoque"

var stockHeaders = []string{
	"Cliente", "Produto", "Caixas", "Pacotes", "Unidades", "Kg", "Atualizado em", "Inventário em",
}

// StockExporter genera el XLSX del estoque con excelize.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter {
	return &StockExporter{}
}

// ExportStock escribe una fila por registro de estoque, con encabezado en negrita.
func (e *StockExporter) ExportStock(rows []dto.StockDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, fmt.Errorf("xlsx: sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#F4E3C1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: style: %w", err)
	}
	for i, h := range stockHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(stockSheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: header: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(stockHeaders), 1)
	_ = f.SetCellStyle(stockSheet, "A1", last, bold)

	for i, r := range rows {
		row := i + 2
		client := r.ClientName
		if client == "" {
			client = r.ClientID
		}
		product := r.ProductName
		if product == "" {
			product = r.ProductID
		}
		inventoryAt := ""
		if r.InventoryUpdatedAt != nil {
			inventoryAt = r.InventoryUpdatedAt.Format("02/01/2006 15:04")
		}
		values := []any{
			client,
			product,
			r.Quantity.Boxes.InexactFloat64(),
			r.Quantity.Packages.InexactFloat64(),
			r.Quantity.Units.InexactFloat64(),
			r.Quantity.Kg.InexactFloat64(),
			r.UpdatedAt.Format("02/01/2006 15:04"),
			inventoryAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(stockSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: row %d: %w", row, err)
		}
	}

	widths := []float64{28, 28, 10, 10, 10, 10, 18, 18}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(stockSheet, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), nil
}
