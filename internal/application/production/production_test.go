package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	appproduction "github.com/jhoicas/Padaria-api/internal/application/production"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

var day = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newUseCase(t *testing.T) (*appproduction.ProductionUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "c1", Name: "Mercado Central", Active: true}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{
		ID: "p1", SKU: "PAO", Name: "Pão francês", Active: true,
		UnitsPerBatch: d(50), UnitsPerTray: d(20), UnitsPerBox: d(10), UnitsPerPackage: d(5),
		KgPerUnit: decimal.RequireFromString("0.05"),
	}))
	uc := appproduction.NewProductionUseCase(store, store.Production(), store.Products(), store.Orders(), store.Shipments(), logger.Nop())
	return uc, store
}

func addOrder(t *testing.T, store *memory.Store, id, status string, q entity.Quantity) {
	t.Helper()
	require.NoError(t, store.Orders().Create(context.Background(), &entity.Order{
		ID: id, ClientID: "c1", ProductID: "p1", Quantity: q, DeliveryDate: day, Status: status, CreatedAt: time.Now(),
	}))
}

func TestSubmit_AcumulaEnLaMismaFila(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Submit(ctx, "u1", production.StageOven, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(10)})
	require.NoError(t, err)
	meta := d(20)
	row, err := uc.Submit(ctx, "u1", production.StageOven, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(5), Meta: &meta})
	require.NoError(t, err)

	assert.True(t, row.Produced.Equal(d(15)))
	assert.Equal(t, production.UnitTrays, row.Unit)
	assert.Equal(t, production.StatusPartial, row.Status)

	panel, err := uc.Panel(ctx, production.StageOven, day)
	require.NoError(t, err)
	require.Len(t, panel.Rows, 1)
	assert.Equal(t, "Pão francês", panel.Rows[0].ProductName)
	assert.Equal(t, "Forno", panel.Label)
	assert.Equal(t, 1, panel.Totals.Status.Partial)
	assert.True(t, panel.Totals.Progress.Equal(d(75)))
}

func TestSubmit_Validaciones(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Submit(ctx, "u1", production.StageDough, dto.SubmitProductionRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "produzido debe ser > 0")

	_, err = uc.Submit(ctx, "u1", production.StageDough, dto.SubmitProductionRequest{ProductID: "zz", Produced: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Submit(ctx, "u1", production.StageDough, dto.SubmitProductionRequest{ProductID: "p1", Produced: d(1), Date: "19/10/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateYDelete_VerificanEstacion(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	row, err := uc.Submit(ctx, "u1", production.StageCooling, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(3)})
	require.NoError(t, err)

	_, err = uc.Update(ctx, production.StageOven, row.ID, dto.UpdateProductionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la fila es de otra estación")

	produced := d(8)
	meta := d(8)
	out, err := uc.Update(ctx, production.StageCooling, row.ID, dto.UpdateProductionRequest{Produced: &produced, Meta: &meta})
	require.NoError(t, err)
	assert.Equal(t, production.StatusComplete, out.Status)

	require.NoError(t, uc.Delete(ctx, production.StageCooling, row.ID))
	assert.ErrorIs(t, uc.Delete(ctx, production.StageCooling, row.ID), domain.ErrNotFound)
}

func TestPackOrder_AvanzaEstadoYSumaEstoque(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	addOrder(t, store, "o1", entity.OrderPending, entity.Quantity{Boxes: d(2), Units: d(5)}) // 25 unidades

	out, err := uc.PackOrder(ctx, "u1", dto.PackOrderRequest{OrderID: "o1", Date: "2026-10-19", Quantity: entity.Quantity{Boxes: d(1)}})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInProgress, out.OrderStatus)
	assert.True(t, out.PackedUnits.Equal(d(10)))
	assert.True(t, out.OrderUnits.Equal(d(25)))

	out, err = uc.PackOrder(ctx, "u1", dto.PackOrderRequest{OrderID: "o1", Date: "2026-10-19", Quantity: entity.Quantity{Boxes: d(1), Units: d(5)}})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPacked, out.OrderStatus)
	assert.True(t, out.PackedUnits.Equal(d(25)))
	assert.True(t, out.Stock.Quantity.Boxes.Equal(d(2)))
	assert.True(t, out.Stock.Quantity.Units.Equal(d(5)))

	rec, err := store.Production().Find(ctx, day, string(production.StagePackaging), "p1", "o1")
	require.NoError(t, err)
	require.NotNil(t, rec, "una sola fila de embalagem por pedido y día")
	assert.Equal(t, production.UnitUnits, rec.Unit)
	assert.True(t, rec.Meta.Equal(d(25)))
}

func TestPackOrder_PedidoFinal_Retorna409(t *testing.T) {
	uc, store := newUseCase(t)
	addOrder(t, store, "o1", entity.OrderCancelled, entity.Quantity{Units: d(5)})

	_, err := uc.PackOrder(context.Background(), "u1", dto.PackOrderRequest{OrderID: "o1", Quantity: entity.Quantity{Units: d(1)}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.PackOrder(context.Background(), "u1", dto.PackOrderRequest{OrderID: "nope", Quantity: entity.Quantity{Units: d(1)}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlan_MetaPorEstacionConservaProducido(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	addOrder(t, store, "o1", entity.OrderPending, entity.Quantity{Boxes: d(2), Units: d(5)}) // 25
	addOrder(t, store, "o2", entity.OrderInProgress, entity.Quantity{Packages: d(3)})        // 15
	addOrder(t, store, "o3", entity.OrderCancelled, entity.Quantity{Units: d(1000)})         // ignorado

	_, err := uc.Submit(ctx, "u1", production.StageDough, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(1)})
	require.NoError(t, err)

	plan, err := uc.Plan(ctx, "u1", day)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Orders)
	require.Len(t, plan.Items, 1)
	assert.True(t, plan.Items[0].Units.Equal(d(40)))
	require.Len(t, plan.Items[0].Stations, len(production.Stages))

	massa := plan.Items[0].Stations[0]
	assert.Equal(t, string(production.StageDough), massa.Stage)
	assert.True(t, massa.Value.Equal(d(1)))
	assert.True(t, massa.Kg.Equal(d(2)))

	panel, err := uc.Panel(ctx, production.StageDough, day)
	require.NoError(t, err)
	require.Len(t, panel.Rows, 1)
	assert.True(t, panel.Rows[0].Produced.Equal(d(1)), "lo ya producido se conserva")
	assert.True(t, panel.Rows[0].Meta.Equal(d(1)))

	packaging, err := uc.Panel(ctx, production.StagePackaging, day)
	require.NoError(t, err)
	require.Len(t, packaging.Rows, 2, "una fila de embalagem por pedido")
	metas := map[string]decimal.Decimal{}
	for _, r := range packaging.Rows {
		assert.Equal(t, production.UnitUnits, r.Unit)
		metas[r.OrderID] = r.Meta
	}
	assert.True(t, metas["o1"].Equal(d(25)))
	assert.True(t, metas["o2"].Equal(d(15)))
	assert.Equal(t, production.UnitUnits, packaging.Totals.Unit)
	assert.True(t, packaging.Totals.Meta.Equal(d(40)))
}

func TestPlanYPackOrder_EmbalagemSinMetaDuplicada(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	addOrder(t, store, "o1", entity.OrderPending, entity.Quantity{Boxes: d(10)}) // 100

	_, err := uc.Plan(ctx, "u1", day)
	require.NoError(t, err)
	out, err := uc.PackOrder(ctx, "u1", dto.PackOrderRequest{OrderID: "o1", Date: "2026-10-19", Quantity: entity.Quantity{Boxes: d(10)}})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPacked, out.OrderStatus, "embalaje completo salta de pendente a embalado")

	panel, err := uc.Panel(ctx, production.StagePackaging, day)
	require.NoError(t, err)
	require.Len(t, panel.Rows, 1)
	row := panel.Rows[0]
	assert.Equal(t, "o1", row.OrderID)
	assert.Equal(t, production.UnitUnits, row.Unit)
	assert.True(t, row.Meta.Equal(d(100)))
	assert.True(t, row.Produced.Equal(d(100)))
	assert.Equal(t, production.StatusComplete, row.Status)

	assert.True(t, panel.Totals.Meta.Equal(d(100)))
	assert.True(t, panel.Totals.Produced.Equal(d(100)))
	assert.True(t, panel.Totals.Progress.Equal(d(100)))
	assert.Equal(t, 1, panel.Totals.Status.Complete)

	// Volver a planear no pisa lo embalado.
	_, err = uc.Plan(ctx, "u1", day)
	require.NoError(t, err)
	panel, err = uc.Panel(ctx, production.StagePackaging, day)
	require.NoError(t, err)
	require.Len(t, panel.Rows, 1)
	assert.True(t, panel.Rows[0].Produced.Equal(d(100)))
}

func TestSubmit_EmbalagemEnUnidades(t *testing.T) {
	uc, _ := newUseCase(t)
	row, err := uc.Submit(context.Background(), "u1", production.StagePackaging, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(30)})
	require.NoError(t, err)
	assert.Equal(t, production.UnitUnits, row.Unit)
}

func TestStageTotals_UnidadesMezcladas(t *testing.T) {
	recs := []*entity.ProductionRecord{
		{Meta: d(10), Produced: d(5), Unit: production.UnitTrays},
		{Meta: d(10), Produced: d(10), Unit: production.UnitUnits},
	}
	tot := appproduction.StageTotals(recs)
	assert.Equal(t, 2, tot.Rows)
	assert.Empty(t, tot.Unit)
	assert.Equal(t, production.UnitTrays, appproduction.StageTotals(recs[:1]).Unit)
}

// dupOnceRunner falla con ErrDuplicate el primer Create de producción, como cuando otra tx
// inserta la misma fila entre el Find y el Create.
type dupOnceRunner struct {
	*memory.Store
	fired bool
}

func (r *dupOnceRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	shipmentRepo repository.ShipmentRepository,
	productionRepo repository.ProductionRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return r.Store.Run(ctx, func(
		stockRepo repository.StockRepository,
		shipmentRepo repository.ShipmentRepository,
		productionRepo repository.ProductionRepository,
		orderRepo repository.OrderRepository,
	) error {
		return fn(stockRepo, shipmentRepo, &dupOnceProduction{ProductionRepository: productionRepo, r: r}, orderRepo)
	})
}

type dupOnceProduction struct {
	repository.ProductionRepository
	r *dupOnceRunner
}

func (p *dupOnceProduction) Create(ctx context.Context, rec *entity.ProductionRecord) error {
	if !p.r.fired {
		p.r.fired = true
		return domain.ErrDuplicate
	}
	return p.ProductionRepository.Create(ctx, rec)
}

func TestPackOrder_ReintentaAnteFilaDuplicada(t *testing.T) {
	_, store := newUseCase(t)
	runner := &dupOnceRunner{Store: store}
	uc := appproduction.NewProductionUseCase(runner, store.Production(), store.Products(), store.Orders(), store.Shipments(), logger.Nop())
	ctx := context.Background()
	addOrder(t, store, "o1", entity.OrderPending, entity.Quantity{Units: d(20)})

	out, err := uc.PackOrder(ctx, "u1", dto.PackOrderRequest{OrderID: "o1", Date: "2026-10-19", Quantity: entity.Quantity{Units: d(8)}})
	require.NoError(t, err)
	assert.True(t, runner.fired)
	assert.True(t, out.PackedUnits.Equal(d(8)))
	assert.True(t, out.Stock.Quantity.Units.Equal(d(8)), "el primer intento se deshizo: el estoque suma una sola vez")
	assert.Equal(t, entity.OrderInProgress, out.OrderStatus)
}

func TestDailySummary_TodasLasEstaciones(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()
	meta := d(10)
	_, err := uc.Submit(ctx, "u1", production.StageOven, dto.SubmitProductionRequest{Date: "2026-10-19", ProductID: "p1", Produced: d(10), Meta: &meta})
	require.NoError(t, err)
	require.NoError(t, store.Shipments().Create(ctx, &entity.Shipment{
		ID: "s1", Date: day, ClientID: "c1", ProductID: "p1",
		Meta: entity.Quantity{Units: d(5)}, Delivered: entity.Quantity{Units: d(2)},
	}))

	out, err := uc.DailySummary(ctx, day)
	require.NoError(t, err)
	assert.Len(t, out.Stages, len(production.Stages))
	assert.Equal(t, 1, out.Stages[string(production.StageOven)].Status.Complete)
	assert.Equal(t, 0, out.Stages[string(production.StageDough)].Rows)
	assert.Equal(t, 1, out.Shipments.Rows)
	assert.Equal(t, 1, out.Shipments.Status.Partial)
}
