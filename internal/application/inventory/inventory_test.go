package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

func units(n int64) entity.Quantity {
	return entity.Quantity{Units: decimal.NewFromInt(n)}
}

type exporterStub struct{ rows []dto.StockDTO }

func (e *exporterStub) ExportStock(rows []dto.StockDTO) ([]byte, error) {
	e.rows = rows
	return []byte("xlsx"), nil
}

type fixture struct {
	store     *memory.Store
	stock     *inventory.StockUseCase
	shipments *inventory.ShipmentUseCase
	exporter  *exporterStub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now()
	for _, c := range []entity.Client{
		{ID: "c1", Name: "Mercado Central", Active: true, CreatedAt: now},
		{ID: "c2", Name: "Café Aurora", Active: true, CreatedAt: now},
	} {
		c := c
		require.NoError(t, store.Clients().Create(ctx, &c))
	}
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", SKU: "PAO", Name: "Pão francês", Active: true}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p2", SKU: "BOLO", Name: "Bolo", Active: true}))

	exp := &exporterStub{}
	log := logger.Nop()
	return &fixture{
		store:     store,
		exporter:  exp,
		stock:     inventory.NewStockUseCase(store, store.Stock(), store.Clients(), store.Products(), exp, log),
		shipments: inventory.NewShipmentUseCase(store, store.Shipments(), store.Clients(), store.Products(), log),
	}
}

func (f *fixture) units(t *testing.T, clientID, productID string) decimal.Decimal {
	t.Helper()
	st, err := f.store.Stock().Get(context.Background(), clientID, productID)
	require.NoError(t, err)
	if st == nil {
		return decimal.Zero
	}
	return st.Quantity.Units
}

func TestAdjust_CreaFilaYSuma(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)
	assert.Equal(t, "Mercado Central", out.ClientName)
	assert.Equal(t, "Pão francês", out.ProductName)

	_, err = f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(-4)})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(6)))
}

func TestAdjust_NegativoSinConfirmar_Retorna409(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(3)})
	require.NoError(t, err)

	_, err = f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(-5)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(3)), "el estoque no cambia")

	_, err = f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(-5), ConfirmNegative: true})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(-2)))
}

func TestAdjust_ParInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.stock.Adjust(context.Background(), dto.AdjustStockRequest{ClientID: "nope", ProductID: "p1", Delta: units(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.stock.Adjust(context.Background(), dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "delta cero")
}

func TestAdjust_ConcurrenteUnaFilaPorPar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(1)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.store.Stock().Count())
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(20)))
}

func TestSetInventory_ReemplazaYMarcaFecha(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)

	out, err := f.stock.SetInventory(ctx, dto.InventoryCountRequest{
		ClientID: "c1", ProductID: "p1",
		Quantity: entity.Quantity{Boxes: decimal.NewFromInt(2), Units: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	require.NotNil(t, out.InventoryUpdatedAt)
	assert.True(t, out.Quantity.Boxes.Equal(decimal.NewFromInt(2)))
	assert.True(t, out.Quantity.Units.Equal(decimal.NewFromInt(1)))

	_, err = f.stock.SetInventory(ctx, dto.InventoryCountRequest{ClientID: "c1", ProductID: "p1", Quantity: units(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_YGetNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(1)})
	require.NoError(t, err)

	require.NoError(t, f.stock.Delete(ctx, "c1", "p1"))
	_, err = f.stock.Get(ctx, "c1", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.stock.Delete(ctx, "c1", "p1"), domain.ErrNotFound)
}

func TestExport_PasaTodasLasFilas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(1)})
	require.NoError(t, err)
	_, err = f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c2", ProductID: "p2", Delta: units(2)})
	require.NoError(t, err)

	data, err := f.stock.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Len(t, f.exporter.rows, 2)
}

func TestShipmentCreate_DescuentaEstoque(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)

	out, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{
		Date: "2026-10-19", ClientID: "c1", ProductID: "p1", Meta: units(8), Delivered: units(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", out.Date)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(2)))
}

func TestShipmentCreate_SinEstoque_NoCreaSaida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{
		Date: "2026-10-19", ClientID: "c1", ProductID: "p1", Delivered: units(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	list, err := f.shipments.List(ctx, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Empty(t, list.Items, "la transacción se deshace")
}

func TestShipmentUpdate_AplicaDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)
	s, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{ClientID: "c1", ProductID: "p1", Delivered: units(4)})
	require.NoError(t, err)

	_, err = f.shipments.Update(ctx, s.ID, dto.ShipmentRequest{ClientID: "c1", ProductID: "p1", Delivered: units(7)})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(3)))

	_, err = f.shipments.Update(ctx, s.ID, dto.ShipmentRequest{ClientID: "c1", ProductID: "p1", Delivered: units(1)})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(9)))
}

func TestShipmentUpdate_CambioDePar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)
	_, err = f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c2", ProductID: "p1", Delta: units(10)})
	require.NoError(t, err)
	s, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{ClientID: "c1", ProductID: "p1", Delivered: units(4)})
	require.NoError(t, err)

	_, err = f.shipments.Update(ctx, s.ID, dto.ShipmentRequest{ClientID: "c2", ProductID: "p1", Delivered: units(6)})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(10)), "el par anterior recupera todo")
	assert.True(t, f.units(t, "c2", "p1").Equal(decimal.NewFromInt(4)))
}

func TestShipmentDelete_DevuelveEstoque(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.stock.Adjust(ctx, dto.AdjustStockRequest{ClientID: "c1", ProductID: "p1", Delta: units(5)})
	require.NoError(t, err)
	s, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{ClientID: "c1", ProductID: "p1", Delivered: units(5)})
	require.NoError(t, err)
	assert.True(t, f.units(t, "c1", "p1").IsZero())

	require.NoError(t, f.shipments.Delete(ctx, s.ID))
	assert.True(t, f.units(t, "c1", "p1").Equal(decimal.NewFromInt(5)))
	assert.ErrorIs(t, f.shipments.Delete(ctx, s.ID), domain.ErrNotFound)
}

func TestShipmentValidate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.shipments.Create(ctx, "u1", dto.ShipmentRequest{ClientID: "c1", ProductID: "p1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "meta y realizado en cero")

	_, err = f.shipments.Create(ctx, "u1", dto.ShipmentRequest{ClientID: "c1", ProductID: "zz", Meta: units(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
