package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

func TestProductCreate_SkuDuplicadoYFactores(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), logger.Nop())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{SKU: " PAO ", Name: "Pão francês", UnitsPerBox: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "PAO", out.SKU)
	assert.True(t, out.Active)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "PAO", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "X", Name: "X", UnitsPerTray: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_Parcial(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewProductUseCase(store.Products(), logger.Nop())
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "BOLO", Name: "Bolo", ShelfLifeDays: 3})
	require.NoError(t, err)

	active := false
	days := 5
	out, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Active: &active, ShelfLifeDays: &days})
	require.NoError(t, err)
	assert.False(t, out.Active)
	assert.Equal(t, 5, out.ShelfLifeDays)
	assert.Equal(t, "Bolo", out.Name)

	empty := "  "
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOptions_FiltroNormalizadoYOrden(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, c := range []entity.Client{
		{ID: "1", Name: "Padaria São João", Active: true},
		{ID: "2", Name: "Café Aurora", Active: true},
		{ID: "3", Name: "Sao Jorge", Active: false},
	} {
		c := c
		require.NoError(t, store.Clients().Create(ctx, &c))
	}
	uc := usecase.NewOptionsUseCase(store.Clients(), store.Products())

	all, err := uc.Clients(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2, "solo activos")
	assert.Equal(t, "Café Aurora", all[0].Label)

	filtered, err := uc.Clients(ctx, "SAO")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].Value)

	assert.Len(t, uc.Stages(), 5)
	assert.Len(t, uc.Units(), 4)
}

func newOrderUseCase(t *testing.T) (*usecase.OrderUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: "c1", Name: "Mercado", Active: true}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", SKU: "PAO", Name: "Pão", Active: true}))
	return usecase.NewOrderUseCase(store.Orders(), store.Clients(), store.Products(), logger.Nop()), store
}

func TestOrderCreate_Validaciones(t *testing.T) {
	uc, _ := newOrderUseCase(t)
	ctx := context.Background()
	q := entity.Quantity{Units: decimal.NewFromInt(10)}

	out, err := uc.Create(ctx, "u1", dto.CreateOrderRequest{ClientID: "c1", ProductID: "p1", Quantity: q, DeliveryDate: "2026-10-20"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, "2026-10-20", out.DeliveryDate)

	_, err = uc.Create(ctx, "u1", dto.CreateOrderRequest{ClientID: "c1", ProductID: "p1", DeliveryDate: "2026-10-20"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad en cero")

	_, err = uc.Create(ctx, "u1", dto.CreateOrderRequest{ClientID: "c1", ProductID: "p1", Quantity: q})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin data_entrega")

	_, err = uc.Create(ctx, "u1", dto.CreateOrderRequest{ClientID: "zz", ProductID: "p1", Quantity: q, DeliveryDate: "2026-10-20"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStatus_Transiciones(t *testing.T) {
	uc, _ := newOrderUseCase(t)
	ctx := context.Background()
	o, err := uc.Create(ctx, "u1", dto.CreateOrderRequest{
		ClientID: "c1", ProductID: "p1", Quantity: entity.Quantity{Units: decimal.NewFromInt(1)}, DeliveryDate: "2026-10-20",
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, o.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, domain.ErrConflict, "pendente no pasa directo a entregue")
	_, err = uc.UpdateStatus(ctx, o.ID, entity.OrderPacked)
	assert.ErrorIs(t, err, domain.ErrConflict, "embalado solo llega por em_producao o por embalagem")

	for _, s := range []string{entity.OrderInProgress, entity.OrderPacked} {
		_, err = uc.UpdateStatus(ctx, o.ID, s)
		require.NoError(t, err, s)
	}
	_, err = uc.UpdateStatus(ctx, o.ID, entity.OrderInProgress)
	assert.ErrorIs(t, err, domain.ErrConflict, "embalado no vuelve a em_producao a mano")
	_, err = uc.UpdateStatus(ctx, o.ID, entity.OrderDelivered)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, o.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict, "entregue es final")

	notes := "x"
	_, err = uc.Update(ctx, o.ID, dto.UpdateOrderRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.UpdateStatus(ctx, o.ID, "desconocido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderList_Filtros(t *testing.T) {
	uc, _ := newOrderUseCase(t)
	ctx := context.Background()
	q := entity.Quantity{Units: decimal.NewFromInt(1)}
	for _, date := range []string{"2026-10-20", "2026-10-20", "2026-10-21"} {
		_, err := uc.Create(ctx, "u1", dto.CreateOrderRequest{ClientID: "c1", ProductID: "p1", Quantity: q, DeliveryDate: date})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, usecase.OrderListFilter{DeliveryDate: "2026-10-20", Status: "pendente, em_producao", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_, err = uc.List(ctx, usecase.OrderListFilter{Status: "xx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewUserUseCase(store.Users(), logger.Nop())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUserRequest{Email: " Ana@Padaria.com ", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@padaria.com", out.Email)
	assert.Equal(t, entity.RoleProduction, out.Role)

	stored, err := store.Users().GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", stored.PasswordHash)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "ana@padaria.com", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "b@padaria.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Email: "c@padaria.com", Password: "segredo123", Role: "chefe"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
