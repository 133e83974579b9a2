package repository

import (
	"context"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// SalesBatch filas de venta leídas de la planilla y cuántas se descartaron por mal formadas.
type SalesBatch struct {
	Sales   []entity.Sale
	Skipped int
}

// SalesSource fuente de ventas del dashboard (planilla de Google Sheets).
type SalesSource interface {
	FetchSales(ctx context.Context) (*SalesBatch, error)
}
