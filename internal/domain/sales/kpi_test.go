package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/sales"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sale(date, client, amount string) entity.Sale {
	return entity.Sale{Date: day(date), Client: client, Amount: decimal.RequireFromString(amount)}
}

func opts() sales.Options {
	return sales.Options{Ref: day("2026-03-31"), PeriodDays: 7, Weeks: 2, ActiveDays: 7, ChurnDays: 14, TopN: 2}
}

func TestCompute_Periodos(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-31", "Mercado Central", "100"),
		sale("2026-03-25", "Café Aurora", "50"),     // primer día del período actual
		sale("2026-03-24", "Mercado Central", "60"), // último día del período anterior
		sale("2026-03-18", "Café Aurora", "40"),
		sale("2026-03-17", "Padaria Velha", "999"), // fuera de ambas ventanas
		sale("2026-04-01", "Futuro", "500"),        // posterior a ref: ignorada
	}

	rep := sales.Compute(rows, opts())

	assert.True(t, rep.Current.Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, rep.Current.Orders)
	assert.True(t, rep.Current.AvgTicket.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, day("2026-03-25"), rep.Current.Start)

	assert.True(t, rep.Previous.Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, rep.Previous.Orders)
	assert.Equal(t, 2, rep.Previous.Customers)

	require.NotNil(t, rep.VariationPct)
	assert.True(t, rep.VariationPct.Equal(decimal.NewFromInt(50)))
}

func TestCompute_SinPeriodoAnterior_VariacionNil(t *testing.T) {
	rep := sales.Compute([]entity.Sale{sale("2026-03-30", "A", "10")}, opts())
	assert.Nil(t, rep.VariationPct)
}

func TestCompute_SerieSemanal(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-31", "A", "10"),
		sale("2026-03-25", "A", "5"),
		sale("2026-03-24", "B", "7"),
		sale("2026-03-18", "B", "1"),
		sale("2026-03-17", "B", "100"), // antes de la primera semana
	}
	rep := sales.Compute(rows, opts())

	require.Len(t, rep.Weekly, 2)
	assert.Equal(t, day("2026-03-18"), rep.Weekly[0].Start)
	assert.Equal(t, day("2026-03-24"), rep.Weekly[0].End)
	assert.True(t, rep.Weekly[0].Total.Equal(decimal.NewFromInt(8)))
	assert.True(t, rep.Weekly[1].Total.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 2, rep.Weekly[1].Orders)
}

func TestCompute_NuevosVsRecurrentes(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-30", "Padaria São João", "30"),
		sale("2026-02-01", "padaria sao joao", "10"), // mismo cliente normalizado
		sale("2026-03-29", "Café Novo", "20"),
	}
	rep := sales.Compute(rows, opts())

	assert.Equal(t, 1, rep.Customers.New)
	assert.Equal(t, 1, rep.Customers.Recurring)
	assert.True(t, rep.Customers.NewRevenue.Equal(decimal.NewFromInt(20)))
	assert.True(t, rep.Customers.RecurringRevenue.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 2, rep.Current.Customers)
}

func TestCompute_Engajamento(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-31", "Ativo", "1"),
		sale("2026-03-20", "Risco", "1"),   // 11 días
		sale("2026-03-01", "Perdido", "1"), // 30 días
	}
	rep := sales.Compute(rows, opts())

	assert.Equal(t, 1, rep.Engagement.Active)
	assert.Equal(t, 1, rep.Engagement.NearChurn)
	assert.Equal(t, 1, rep.Engagement.Churned)
	require.Len(t, rep.Engagement.Clients, 3)
	assert.Equal(t, "Ativo", rep.Engagement.Clients[0].Client)
	assert.Equal(t, sales.EngagementChurned, rep.Engagement.Clients[2].Bucket)
	assert.Equal(t, 30, rep.Engagement.Clients[2].DaysSince)
}

func TestCompute_TopClientes(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-31", "B", "50"),
		sale("2026-03-30", "A", "50"),
		sale("2026-03-29", "C", "80"),
		sale("2026-03-28", "D", "5"),
	}
	rep := sales.Compute(rows, opts())

	require.Len(t, rep.TopClients, 2)
	assert.Equal(t, "C", rep.TopClients[0].Client)
	assert.Equal(t, "A", rep.TopClients[1].Client, "empate por total se ordena por nombre")
}

func TestCompute_NombreMasReciente(t *testing.T) {
	rows := []entity.Sale{
		sale("2026-03-01", "MERCADO CENTRAL", "1"),
		sale("2026-03-30", "Mercado Central", "1"),
	}
	rep := sales.Compute(rows, opts())
	require.Len(t, rep.Engagement.Clients, 1)
	assert.Equal(t, "Mercado Central", rep.Engagement.Clients[0].Client)
}
