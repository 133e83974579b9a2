package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// ApplyStockDelta suma delta al stock del par (clientID, productID) dentro de la tx del caller:
// toma el lock del par, lee la fila (o parte de cero si no existe) y la guarda.
// Es el único camino de escritura de cantidades, por eso hay una sola fila por par.
func ApplyStockDelta(
	ctx context.Context,
	stockRepo repository.StockRepository,
	clientID, productID string,
	delta entity.Quantity,
	allowNegative bool,
	now time.Time,
) (*entity.Stock, error) {
	if err := stockRepo.Lock(ctx, clientID, productID); err != nil {
		return nil, err
	}
	stock, err := stockRepo.Get(ctx, clientID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &entity.Stock{ClientID: clientID, ProductID: productID}
	}
	next, err := inventory.ApplyDelta(stock.Quantity, delta, allowNegative)
	if err != nil {
		return nil, err
	}
	stock.Quantity = next
	stock.UpdatedAt = now
	if err := stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}
