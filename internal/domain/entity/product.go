package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la panadería con sus factores de conversión por estación.
// Un factor en cero significa "sin conversión" para esa estación.
type Product struct {
	ID              string
	SKU             string // código único; se imprime como código de barras en la etiqueta
	Name            string
	UnitsPerBatch   decimal.Decimal // unidades por masa (batelada)
	UnitsPerTray    decimal.Decimal // unidades por assadeira
	UnitsPerBox     decimal.Decimal // unidades por caixa
	UnitsPerPackage decimal.Decimal // unidades por pacote
	KgPerUnit       decimal.Decimal // peso de masa por unidad
	ShelfLifeDays   int             // validez en días, para la etiqueta
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
