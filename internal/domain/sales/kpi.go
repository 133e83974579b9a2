// Package sales calcula los KPIs del dashboard de ventas a partir de las filas de la
// planilla {data, cliente, valor}. Todo se hace en memoria en una pasada sobre las filas.
package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/pkg/textnorm"
)

// Buckets de engajamento.
const (
	EngagementActive    = "ativo"
	EngagementNearChurn = "em_risco"
	EngagementChurned   = "perdido"
)

// Options ventanas del cálculo. Ref se trunca al día.
type Options struct {
	Ref        time.Time
	PeriodDays int
	Weeks      int
	ActiveDays int
	ChurnDays  int
	TopN       int
}

func (o Options) withDefaults() Options {
	if o.PeriodDays <= 0 {
		o.PeriodDays = 30
	}
	if o.Weeks <= 0 {
		o.Weeks = 8
	}
	if o.ActiveDays <= 0 {
		o.ActiveDays = 30
	}
	if o.ChurnDays < o.ActiveDays {
		o.ChurnDays = o.ActiveDays * 2
	}
	if o.TopN <= 0 {
		o.TopN = 10
	}
	return o
}

// PeriodTotals totales de una ventana de días (Start y End inclusivos).
type PeriodTotals struct {
	Start     time.Time
	End       time.Time
	Total     decimal.Decimal
	Orders    int
	AvgTicket decimal.Decimal
	Customers int
}

// WeekPoint total de una semana de 7 días terminada en End.
type WeekPoint struct {
	Start  time.Time
	End    time.Time
	Total  decimal.Decimal
	Orders int
}

// CustomerSplit clientes nuevos vs recurrentes dentro del período actual.
type CustomerSplit struct {
	New              int
	Recurring        int
	NewRevenue       decimal.Decimal
	RecurringRevenue decimal.Decimal
}

// ClientEngagement situación de un cliente según su última compra.
type ClientEngagement struct {
	Client    string
	LastSale  time.Time
	DaysSince int
	Bucket    string
	Total     decimal.Decimal // histórico hasta Ref
}

// Engagement conteo de clientes por bucket y detalle por cliente (más recientes primero).
type Engagement struct {
	Active    int
	NearChurn int
	Churned   int
	Clients   []ClientEngagement
}

// TopClient ranking de clientes del período actual.
type TopClient struct {
	Client string
	Total  decimal.Decimal
	Orders int
}

// Report resultado completo del dashboard.
type Report struct {
	Ref          time.Time
	Current      PeriodTotals
	Previous     PeriodTotals
	VariationPct *decimal.Decimal // nil si el período anterior no tuvo ventas
	Weekly       []WeekPoint
	Customers    CustomerSplit
	Engagement   Engagement
	TopClients   []TopClient
}

type clientAgg struct {
	name       string
	nameDate   time.Time
	first      time.Time
	last       time.Time
	total      decimal.Decimal
	curTotal   decimal.Decimal
	curOrders  int
	prevActive bool
}

// civil trunca t a su fecha calendario en UTC, para contar días sin efectos de horario de verano.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Compute calcula el Report. Las ventas posteriores a Ref se ignoran.
func Compute(rows []entity.Sale, opts Options) Report {
	opts = opts.withDefaults()
	ref := civil(opts.Ref)

	curStart := ref.AddDate(0, 0, -opts.PeriodDays+1)
	prevEnd := curStart.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -opts.PeriodDays+1)

	rep := Report{
		Ref:      ref,
		Current:  PeriodTotals{Start: curStart, End: ref},
		Previous: PeriodTotals{Start: prevStart, End: prevEnd},
	}

	rep.Weekly = make([]WeekPoint, opts.Weeks)
	for i := range rep.Weekly {
		end := ref.AddDate(0, 0, -7*(opts.Weeks-1-i))
		rep.Weekly[i] = WeekPoint{Start: end.AddDate(0, 0, -6), End: end}
	}
	firstWeek := rep.Weekly[0].Start

	clients := make(map[string]*clientAgg)
	prevClients := 0

	for _, s := range rows {
		day := civil(s.Date)
		if day.After(ref) {
			continue
		}

		inCurrent := !day.Before(curStart)
		inPrevious := !inCurrent && !day.Before(prevStart)

		if inCurrent {
			rep.Current.Total = rep.Current.Total.Add(s.Amount)
			rep.Current.Orders++
		} else if inPrevious {
			rep.Previous.Total = rep.Previous.Total.Add(s.Amount)
			rep.Previous.Orders++
		}

		if !day.Before(firstWeek) {
			idx := daysBetween(firstWeek, day) / 7
			rep.Weekly[idx].Total = rep.Weekly[idx].Total.Add(s.Amount)
			rep.Weekly[idx].Orders++
		}

		key := textnorm.Key(s.Client)
		if key == "" {
			continue
		}
		c, ok := clients[key]
		if !ok {
			c = &clientAgg{name: s.Client, nameDate: day, first: day, last: day}
			clients[key] = c
		}
		if day.Before(c.first) {
			c.first = day
		}
		if day.After(c.last) {
			c.last = day
		}
		if !day.Before(c.nameDate) {
			c.name, c.nameDate = s.Client, day
		}
		c.total = c.total.Add(s.Amount)
		if inCurrent {
			c.curTotal = c.curTotal.Add(s.Amount)
			c.curOrders++
		}
		if inPrevious && !c.prevActive {
			c.prevActive = true
			prevClients++
		}
	}

	rep.Previous.Customers = prevClients
	rep.Current.AvgTicket = avgTicket(rep.Current)
	rep.Previous.AvgTicket = avgTicket(rep.Previous)
	if rep.Previous.Total.IsPositive() {
		v := rep.Current.Total.Sub(rep.Previous.Total).Div(rep.Previous.Total).Mul(decimal.NewFromInt(100)).Round(2)
		rep.VariationPct = &v
	}

	for _, c := range clients {
		if c.curOrders > 0 {
			rep.Current.Customers++
			if !c.first.Before(curStart) {
				rep.Customers.New++
				rep.Customers.NewRevenue = rep.Customers.NewRevenue.Add(c.curTotal)
			} else {
				rep.Customers.Recurring++
				rep.Customers.RecurringRevenue = rep.Customers.RecurringRevenue.Add(c.curTotal)
			}
			rep.TopClients = append(rep.TopClients, TopClient{Client: c.name, Total: c.curTotal, Orders: c.curOrders})
		}

		since := daysBetween(c.last, ref)
		ce := ClientEngagement{Client: c.name, LastSale: c.last, DaysSince: since, Total: c.total}
		switch {
		case since <= opts.ActiveDays:
			ce.Bucket = EngagementActive
			rep.Engagement.Active++
		case since <= opts.ChurnDays:
			ce.Bucket = EngagementNearChurn
			rep.Engagement.NearChurn++
		default:
			ce.Bucket = EngagementChurned
			rep.Engagement.Churned++
		}
		rep.Engagement.Clients = append(rep.Engagement.Clients, ce)
	}

	sort.Slice(rep.TopClients, func(i, j int) bool {
		a, b := rep.TopClients[i], rep.TopClients[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Client < b.Client
	})
	if len(rep.TopClients) > opts.TopN {
		rep.TopClients = rep.TopClients[:opts.TopN]
	}
	sort.Slice(rep.Engagement.Clients, func(i, j int) bool {
		a, b := rep.Engagement.Clients[i], rep.Engagement.Clients[j]
		if a.DaysSince != b.DaysSince {
			return a.DaysSince < b.DaysSince
		}
		return a.Client < b.Client
	})
	return rep
}

func avgTicket(p PeriodTotals) decimal.Decimal {
	if p.Orders == 0 {
		return decimal.Zero
	}
	return p.Total.Div(decimal.NewFromInt(int64(p.Orders))).Round(2)
}
