package inventory

import (
	"context"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Todo cambio de stock corre dentro de Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		shipmentRepo repository.ShipmentRepository,
		productionRepo repository.ProductionRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// StockExporter genera la planilla de estoque (XLSX).
type StockExporter interface {
	ExportStock(rows []dto.StockDTO) ([]byte, error)
}
