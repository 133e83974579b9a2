package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una fila de venta de la planilla {data, cliente, valor}.
type Sale struct {
	Date   time.Time
	Client string
	Amount decimal.Decimal
}
