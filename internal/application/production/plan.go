package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// planLimit tope de pedidos de un día considerados por el plan.
const planLimit = 5000

// Plan calcula el plan del día a partir de los pedidos pendentes/em_producao con entrega en date
// y fija la meta de cada (estação, produto); embalagem lleva una fila por pedido en unidades.
// Lo ya producido en las filas existentes se conserva.
func (uc *ProductionUseCase) Plan(ctx context.Context, userID string, date time.Time) (*dto.PlanResponse, error) {
	orders, err := uc.orderRepo.List(ctx, repository.OrderFilter{
		DeliveryDate: &date,
		Statuses:     []string{entity.OrderPending, entity.OrderInProgress},
		Limit:        planLimit,
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ProductID)
	}
	products := map[string]*entity.Product{}
	if len(ids) > 0 {
		products, err = uc.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}
	plan := production.Plan(orders, products)

	err = uc.txRunner.Run(ctx, func(
		_ repository.StockRepository,
		_ repository.ShipmentRepository,
		prodRepo repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		now := time.Now()
		for _, pp := range plan {
			for _, sq := range pp.Stations {
				if sq.Stage == production.StagePackaging {
					continue
				}
				if err := upsertMeta(ctx, prodRepo, date, sq.Stage, pp.ProductID, "", sq.Value, sq.Unit, userID, now); err != nil {
					return err
				}
			}
		}
		// embalagem: una fila por pedido en unidades, la misma que acumula PackOrder.
		for _, o := range orders {
			var conv production.Conversion
			if p, ok := products[o.ProductID]; ok {
				conv = production.ConversionOf(p)
			}
			meta := production.ToUnits(o.Quantity, conv)
			if err := upsertMeta(ctx, prodRepo, date, production.StagePackaging, o.ProductID, o.ID, meta, production.UnitUnits, userID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("data", date.Format(dto.DateLayout)).
		Int("pedidos", len(orders)).
		Int("produtos", len(plan)).
		Msg("plano de produção")

	out := &dto.PlanResponse{
		Date:   date.Format(dto.DateLayout),
		Orders: len(orders),
		Items:  make([]dto.PlanItemDTO, 0, len(plan)),
	}
	for _, pp := range plan {
		item := dto.PlanItemDTO{ProductID: pp.ProductID, Units: pp.Units}
		if p, ok := products[pp.ProductID]; ok {
			item.ProductName = p.Name
		}
		for _, sq := range pp.Stations {
			item.Stations = append(item.Stations, dto.StationQuantityDTO{
				Stage: string(sq.Stage),
				Value: sq.Value,
				Unit:  sq.Unit,
				Kg:    sq.Kg,
			})
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// upsertMeta fija meta y unidad de la fila (data, estação, produto, pedido) conservando lo producido.
func upsertMeta(
	ctx context.Context,
	prodRepo repository.ProductionRepository,
	date time.Time,
	stage production.Stage,
	productID, orderID string,
	meta decimal.Decimal,
	unit, userID string,
	now time.Time,
) error {
	rec, err := prodRepo.Find(ctx, date, string(stage), productID, orderID)
	if err != nil {
		return err
	}
	if rec == nil {
		return prodRepo.Create(ctx, &entity.ProductionRecord{
			ID:        uuid.New().String(),
			Date:      date,
			Stage:     string(stage),
			ProductID: productID,
			OrderID:   orderID,
			Meta:      meta,
			Unit:      unit,
			CreatedBy: userID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	rec.Meta = meta
	rec.Unit = unit
	rec.UpdatedAt = now
	return prodRepo.Update(ctx, rec)
}
