package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

type sheetStub struct {
	batch *repository.SalesBatch
	err   error
	calls int
}

func (s *sheetStub) FetchSales(context.Context) (*repository.SalesBatch, error) {
	s.calls++
	return s.batch, s.err
}

func sale(date, client string, amount int64) entity.Sale {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Sale{Date: d, Client: client, Amount: decimal.NewFromInt(amount)}
}

func newDashboard(src repository.SalesSource, now time.Time) *DashboardUseCase {
	uc := NewDashboardUseCase(src, DashboardConfig{PeriodDays: 7, Weeks: 2, ActiveDays: 7, ChurnDays: 14})
	uc.now = func() time.Time { return now }
	return uc
}

func TestGetSales_RefPorDefectoEsHoy(t *testing.T) {
	src := &sheetStub{batch: &repository.SalesBatch{
		Sales: []entity.Sale{
			sale("2026-03-31", "Mercado Central", 100),
			sale("2026-03-20", "Café Aurora", 40),
		},
		Skipped: 2,
	}}
	uc := newDashboard(src, time.Date(2026, 3, 31, 15, 0, 0, 0, time.UTC))

	out, err := uc.GetSales(context.Background(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-31", out.Ref)
	assert.Equal(t, 7, out.PeriodDays)
	assert.Equal(t, 2, out.SkippedRows)
	assert.Equal(t, "2026-03-25", out.Current.Start)
	assert.True(t, out.Current.Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Previous.Total.Equal(decimal.NewFromInt(40)))
	require.NotNil(t, out.VariationPct)
	assert.True(t, out.VariationPct.Equal(decimal.NewFromInt(150)))
	assert.Len(t, out.Weekly, 2)
	assert.Equal(t, 1, out.Engagement.Active)
	assert.Equal(t, 1, out.Engagement.NearChurn)
	require.Len(t, out.TopClients, 1)
	assert.Equal(t, "Mercado Central", out.TopClients[0].Client)
}

func TestGetSales_RefYPeriodoExplicitos(t *testing.T) {
	src := &sheetStub{batch: &repository.SalesBatch{Sales: []entity.Sale{sale("2026-02-10", "A", 10)}}}
	uc := newDashboard(src, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))

	out, err := uc.GetSales(context.Background(), "2026-02-14", 30)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", out.Ref)
	assert.Equal(t, 30, out.PeriodDays)
	assert.True(t, out.Current.Total.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, out.VariationPct)
}

func TestGetSales_ParametrosInvalidos(t *testing.T) {
	src := &sheetStub{batch: &repository.SalesBatch{}}
	uc := newDashboard(src, time.Now())

	_, err := uc.GetSales(context.Background(), "31/03/2026", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetSales(context.Background(), "", maxPeriodDays+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, src.calls, "no se consulta la planilla con parámetros inválidos")
}

func TestGetSales_PlanillaNoDisponible(t *testing.T) {
	src := &sheetStub{err: domain.ErrSheetUnavailable}
	uc := newDashboard(src, time.Now())

	_, err := uc.GetSales(context.Background(), "", 0)
	assert.True(t, errors.Is(err, domain.ErrSheetUnavailable))
}

func TestGetSales_ZonaHorariaDefineHoy(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	src := &sheetStub{batch: &repository.SalesBatch{}}
	uc := NewDashboardUseCase(src, DashboardConfig{Location: loc})
	// 01:00 UTC del 1 de abril sigue siendo 31 de marzo en BRT.
	uc.now = func() time.Time { return time.Date(2026, 4, 1, 1, 0, 0, 0, time.UTC) }

	out, err := uc.GetSales(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-31", out.Ref)
}
