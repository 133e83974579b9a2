package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para las filas de producción por estación.
type ProductionRepository interface {
	// Find busca la fila (date, stage, productID, orderID); orderID vacío = fila sin pedido.
	// Devuelve nil, nil si no existe.
	Find(ctx context.Context, date time.Time, stage, productID, orderID string) (*entity.ProductionRecord, error)
	GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error)
	Create(ctx context.Context, rec *entity.ProductionRecord) error
	Update(ctx context.Context, rec *entity.ProductionRecord) error
	ListByDate(ctx context.Context, date time.Time, stage string) ([]*entity.ProductionRecord, error)
	// SumProducedForOrder suma lo producido en una estación para un pedido (todas las fechas).
	SumProducedForOrder(ctx context.Context, stage, orderID string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}
