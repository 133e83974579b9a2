package inventory

import (
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// ApplyDelta suma delta al stock actual (servicio de dominio).
// Si algún bucket queda negativo devuelve ErrInsufficientStock, salvo que allowNegative
// confirme explícitamente el stock negativo.
func ApplyDelta(current, delta entity.Quantity, allowNegative bool) (entity.Quantity, error) {
	next := current.Add(delta)
	if next.HasNegative() && !allowNegative {
		return current, domain.ErrInsufficientStock
	}
	return next, nil
}
