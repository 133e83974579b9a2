package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// Status clasificación de avance de una fila de producción o saída.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusPartial    Status = "partial"
	StatusNotStarted Status = "not-started"
)

var hundred = decimal.NewFromInt(100)

// StatusOf clasifica produced contra meta: not-started si no se produjo nada,
// complete si produced >= meta, partial en otro caso.
func StatusOf(produced, meta decimal.Decimal) Status {
	if !produced.IsPositive() {
		return StatusNotStarted
	}
	if produced.GreaterThanOrEqual(meta) {
		return StatusComplete
	}
	return StatusPartial
}

// QuantityStatus clasifica una Quantidade realizada contra su meta, bucket a bucket.
func QuantityStatus(done, meta entity.Quantity) Status {
	if done.IsZero() {
		return StatusNotStarted
	}
	if done.Covers(meta) {
		return StatusComplete
	}
	return StatusPartial
}

// Progress porcentaje produced/meta con dos decimales, limitado a 100.
func Progress(produced, meta decimal.Decimal) decimal.Decimal {
	if !meta.IsPositive() {
		if produced.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	if !produced.IsPositive() {
		return decimal.Zero
	}
	p := produced.Div(meta).Mul(hundred).Round(2)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// StatusCounts conteo de filas por estado.
type StatusCounts struct {
	Complete   int `json:"complete"`
	Partial    int `json:"partial"`
	NotStarted int `json:"not_started"`
}

// Add incrementa el contador de s.
func (c *StatusCounts) Add(s Status) {
	switch s {
	case StatusComplete:
		c.Complete++
	case StatusPartial:
		c.Partial++
	default:
		c.NotStarted++
	}
}
