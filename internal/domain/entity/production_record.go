package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord es una fila de producción de una estación (massa, forno, embalagem...) para
// un día y producto. Meta y Produced están en la unidad de la estación (Unit).
type ProductionRecord struct {
	ID        string
	Date      time.Time // solo fecha
	Stage     string
	ProductID string
	OrderID   string // vacío si la fila no está atada a un pedido
	Meta      decimal.Decimal
	Produced  decimal.Decimal
	Unit      string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
