package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

func TestExportStock_UnaFilaPorRegistro(t *testing.T) {
	inv := time.Date(2026, 3, 30, 8, 0, 0, 0, time.UTC)
	rows := []dto.StockDTO{
		{
			ClientID: "c1", ClientName: "Mercado Central",
			ProductID: "p1", ProductName: "Pão francês",
			Quantity:  entity.Quantity{Boxes: decimal.NewFromInt(3), Units: decimal.NewFromInt(12)},
			UpdatedAt: inv, InventoryUpdatedAt: &inv,
		},
		{
			ClientID: "c2", ProductID: "p2",
			Quantity:  entity.Quantity{Kg: decimal.RequireFromString("1.5")},
			UpdatedAt: inv,
		},
	}

	out, err := NewStockExporter().ExportStock(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(stockSheet)
	require.NoError(t, err)
	require.Len(t, got, 3, "encabezado + 2 registros")
	assert.Equal(t, "Cliente", got[0][0])
	assert.Equal(t, "Mercado Central", got[1][0])
	assert.Equal(t, "3", got[1][2])
	assert.Equal(t, "12", got[1][4])
	assert.Equal(t, "30/03/2026 08:00", got[1][7])
	assert.Equal(t, "c2", got[2][0], "sin nombre se usa el ID")
	assert.Equal(t, "1.5", got[2][5])
}

func TestExportStock_Vacio(t *testing.T) {
	out, err := NewStockExporter().ExportStock(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetRows(stockSheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
