// Package production contiene los casos de uso de las estaciones de producción: registro de lo
// producido, painel por estación, plan del día, embalaje de pedidos y resumen diario.
package production

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// ProductionUseCase casos de uso de producción por estación.
type ProductionUseCase struct {
	txRunner     inventory.TxRunner
	prodRepo     repository.ProductionRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	log          *logger.Logger
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(
	txRunner inventory.TxRunner,
	prodRepo repository.ProductionRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	shipmentRepo repository.ShipmentRepository,
	log *logger.Logger,
) *ProductionUseCase {
	return &ProductionUseCase{
		txRunner:     txRunner,
		prodRepo:     prodRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		log:          log,
	}
}

// Submit acumula lo producido en la fila (data, estagio, produto); la crea si no existe.
// Si el request trae meta, reemplaza la meta de la fila.
func (uc *ProductionUseCase) Submit(ctx context.Context, userID string, stage production.Stage, in dto.SubmitProductionRequest) (*dto.ProductionRowDTO, error) {
	if in.ProductID == "" || !in.Produced.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Meta != nil && in.Meta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date, dto.Today())
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var rec *entity.ProductionRecord
	submit := func() error {
		return uc.txRunner.Run(ctx, func(
			_ repository.StockRepository,
			_ repository.ShipmentRepository,
			prodRepo repository.ProductionRepository,
			_ repository.OrderRepository,
		) error {
			now := time.Now()
			current, err := prodRepo.Find(ctx, date, string(stage), in.ProductID, "")
			if err != nil {
				return err
			}
			if current == nil {
				current = &entity.ProductionRecord{
					ID:        uuid.New().String(),
					Date:      date,
					Stage:     string(stage),
					ProductID: in.ProductID,
					Unit:      stationUnit(product, stage),
					Produced:  in.Produced,
					Notes:     strings.TrimSpace(in.Notes),
					CreatedBy: userID,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if in.Meta != nil {
					current.Meta = *in.Meta
				}
				rec = current
				return prodRepo.Create(ctx, current)
			}
			current.Produced = current.Produced.Add(in.Produced)
			if in.Meta != nil {
				current.Meta = *in.Meta
			}
			if notes := strings.TrimSpace(in.Notes); notes != "" {
				current.Notes = notes
			}
			current.UpdatedAt = now
			rec = current
			return prodRepo.Update(ctx, current)
		})
	}
	err = submit()
	// Otro operador creó la fila en paralelo: reintentar una vez acumulando sobre ella.
	if errors.Is(err, domain.ErrDuplicate) {
		err = submit()
	}
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("estagio", string(stage)).
		Str("produto_id", in.ProductID).
		Str("produzido", in.Produced.String()).
		Msg("produção registrada")
	row := toRowDTO(rec, product.Name)
	return &row, nil
}

// Panel devuelve las filas de una estación en un día con status, progreso y totales.
func (uc *ProductionUseCase) Panel(ctx context.Context, stage production.Stage, date time.Time) (*dto.PanelResponse, error) {
	recs, err := uc.prodRepo.ListByDate(ctx, date, string(stage))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ProductID)
	}
	names := make(map[string]string)
	if len(ids) > 0 {
		products, err := uc.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for id, p := range products {
			names[id] = p.Name
		}
	}
	out := &dto.PanelResponse{
		Date:   date.Format(dto.DateLayout),
		Stage:  string(stage),
		Label:  stage.Label(),
		Rows:   make([]dto.ProductionRowDTO, 0, len(recs)),
		Totals: StageTotals(recs),
	}
	for _, r := range recs {
		out.Rows = append(out.Rows, toRowDTO(r, names[r.ProductID]))
	}
	return out, nil
}

// Update edita meta, produzido u observación de una fila de la estación.
func (uc *ProductionUseCase) Update(ctx context.Context, stage production.Stage, id string, in dto.UpdateProductionRequest) (*dto.ProductionRowDTO, error) {
	rec, err := uc.getRow(ctx, stage, id)
	if err != nil {
		return nil, err
	}
	if in.Meta != nil {
		if in.Meta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rec.Meta = *in.Meta
	}
	if in.Produced != nil {
		if in.Produced.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rec.Produced = *in.Produced
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}
	rec.UpdatedAt = time.Now()
	if err := uc.prodRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	uc.log.Info().Str("estagio", string(stage)).Str("row_id", id).Msg("linha de produção editada")
	var name string
	if p, err := uc.productRepo.GetByID(ctx, rec.ProductID); err == nil && p != nil {
		name = p.Name
	}
	row := toRowDTO(rec, name)
	return &row, nil
}

// Delete borra una fila de la estación.
func (uc *ProductionUseCase) Delete(ctx context.Context, stage production.Stage, id string) error {
	if _, err := uc.getRow(ctx, stage, id); err != nil {
		return err
	}
	if err := uc.prodRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("estagio", string(stage)).Str("row_id", id).Msg("linha de produção removida")
	return nil
}

// getRow obtiene la fila y verifica que pertenezca a la estación de la URL.
func (uc *ProductionUseCase) getRow(ctx context.Context, stage production.Stage, id string) (*entity.ProductionRecord, error) {
	rec, err := uc.prodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Stage != string(stage) {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// StageTotals suma meta y produzido de las filas y cuenta su status.
func StageTotals(recs []*entity.ProductionRecord) dto.StageTotalsDTO {
	var t dto.StageTotalsDTO
	mixed := false
	for i, r := range recs {
		if i == 0 {
			t.Unit = r.Unit
		} else if r.Unit != t.Unit {
			mixed = true
		}
		t.Rows++
		t.Meta = t.Meta.Add(r.Meta)
		t.Produced = t.Produced.Add(r.Produced)
		t.Status.Add(production.StatusOf(r.Produced, r.Meta))
	}
	if mixed {
		t.Unit = ""
	}
	t.Progress = production.Progress(t.Produced, t.Meta)
	return t
}

// stationUnit unidad en que la estación cuenta este producto.
// embalagem cuenta siempre unidades, como las filas por pedido.
func stationUnit(p *entity.Product, stage production.Stage) string {
	if stage == production.StagePackaging {
		return production.UnitUnits
	}
	return production.QuantityByStation(decimal.Zero, production.ConversionOf(p), stage).Unit
}

func toRowDTO(r *entity.ProductionRecord, productName string) dto.ProductionRowDTO {
	return dto.ProductionRowDTO{
		ID:          r.ID,
		Date:        r.Date.Format(dto.DateLayout),
		Stage:       r.Stage,
		ProductID:   r.ProductID,
		ProductName: productName,
		OrderID:     r.OrderID,
		Meta:        r.Meta,
		Produced:    r.Produced,
		Unit:        r.Unit,
		Status:      production.StatusOf(r.Produced, r.Meta),
		Progress:    production.Progress(r.Produced, r.Meta),
		Notes:       r.Notes,
	}
}
