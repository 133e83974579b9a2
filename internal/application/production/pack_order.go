package production

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// PackOrder registra el embalaje de parte (o todo) de un pedido en una sola transacción:
//  1. suma ToUnits(quantidade) a la fila de embalagem del pedido;
//  2. suma quantidade al estoque de (cliente, produto) del pedido;
//  3. pasa el pedido a embalado si lo embalado cubre lo pedido, si no a em_producao.
func (uc *ProductionUseCase) PackOrder(ctx context.Context, userID string, in dto.PackOrderRequest) (*dto.PackOrderResponse, error) {
	if in.OrderID == "" || in.Quantity.HasNegative() || in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date, dto.Today())
	if err != nil {
		return nil, err
	}

	var (
		order       *entity.Order
		stock       *entity.Stock
		packed      decimal.Decimal
		orderUnits  decimal.Decimal
		productName string
	)
	pack := func() error {
		return uc.txRunner.Run(ctx, func(
			stockRepo repository.StockRepository,
			_ repository.ShipmentRepository,
			prodRepo repository.ProductionRepository,
			orderRepo repository.OrderRepository,
		) error {
			var err error
			order, err = orderRepo.GetForUpdate(ctx, in.OrderID)
			if err != nil {
				return err
			}
			if order == nil {
				return domain.ErrNotFound
			}
			if order.IsFinal() {
				return domain.ErrConflict
			}
			product, err := uc.productRepo.GetByID(ctx, order.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			productName = product.Name
			conv := production.ConversionOf(product)
			units := production.ToUnits(in.Quantity, conv)
			orderUnits = production.ToUnits(order.Quantity, conv)
			now := time.Now()

			rec, err := prodRepo.Find(ctx, date, string(production.StagePackaging), order.ProductID, order.ID)
			if err != nil {
				return err
			}
			if rec == nil {
				rec = &entity.ProductionRecord{
					ID:        uuid.New().String(),
					Date:      date,
					Stage:     string(production.StagePackaging),
					ProductID: order.ProductID,
					OrderID:   order.ID,
					Meta:      orderUnits,
					Produced:  units,
					Unit:      production.UnitUnits,
					CreatedBy: userID,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := prodRepo.Create(ctx, rec); err != nil {
					return err
				}
			} else {
				rec.Produced = rec.Produced.Add(units)
				rec.Meta = orderUnits
				rec.UpdatedAt = now
				if err := prodRepo.Update(ctx, rec); err != nil {
					return err
				}
			}

			stock, err = inventory.ApplyStockDelta(ctx, stockRepo, order.ClientID, order.ProductID, in.Quantity, true, now)
			if err != nil {
				return err
			}

			packed, err = prodRepo.SumProducedForOrder(ctx, string(production.StagePackaging), order.ID)
			if err != nil {
				return err
			}
			if next := order.StatusAfterPacking(packed, orderUnits); next != order.Status {
				order.Status = next
				order.UpdatedAt = now
				return orderRepo.Update(ctx, order)
			}
			return nil
		})
	}
	err = pack()
	// Otro operador creó la fila de embalagem del pedido en paralelo: reintentar una vez.
	if errors.Is(err, domain.ErrDuplicate) {
		err = pack()
	}
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("pedido_id", order.ID).
		Str("cliente_id", order.ClientID).
		Str("embalado", packed.String()).
		Str("status", order.Status).
		Msg("embalagem de pedido")

	return &dto.PackOrderResponse{
		OrderID:     order.ID,
		OrderStatus: order.Status,
		PackedUnits: packed,
		OrderUnits:  orderUnits,
		Stock: dto.StockDTO{
			ClientID:           stock.ClientID,
			ProductID:          stock.ProductID,
			ProductName:        productName,
			Quantity:           stock.Quantity,
			UpdatedAt:          stock.UpdatedAt,
			InventoryUpdatedAt: stock.InventoryUpdatedAt,
		},
	}, nil
}
