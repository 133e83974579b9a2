// Package analytics contiene el caso de uso del dashboard de ventas.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/internal/domain/sales"
)

// maxPeriodDays tope del parámetro periodo.
const maxPeriodDays = 366

// DashboardConfig ventanas por defecto del dashboard.
type DashboardConfig struct {
	PeriodDays int
	Weeks      int
	ActiveDays int
	ChurnDays  int
	Location   *time.Location
}

// DashboardUseCase genera los KPIs de ventas a partir de la planilla.
//
// Fuente de datos: SalesSource (planilla, con cache). El cálculo es en memoria (sales.Compute).
type DashboardUseCase struct {
	source repository.SalesSource
	cfg    DashboardConfig
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source repository.SalesSource, cfg DashboardConfig) *DashboardUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = 30
	}
	return &DashboardUseCase{source: source, cfg: cfg, now: time.Now}
}

// GetSales calcula el dashboard. ref vacío = hoy en la zona horaria configurada;
// periodDays <= 0 usa el período por defecto.
func (uc *DashboardUseCase) GetSales(ctx context.Context, ref string, periodDays int) (*dto.SalesDashboardDTO, error) {
	y, m, d := uc.now().In(uc.cfg.Location).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	refDate, err := dto.ParseDate(ref, today)
	if err != nil {
		return nil, err
	}
	if periodDays <= 0 {
		periodDays = uc.cfg.PeriodDays
	}
	if periodDays > maxPeriodDays {
		return nil, domain.ErrInvalidInput
	}

	batch, err := uc.source.FetchSales(ctx)
	if err != nil {
		return nil, err
	}
	rep := sales.Compute(batch.Sales, sales.Options{
		Ref:        refDate,
		PeriodDays: periodDays,
		Weeks:      uc.cfg.Weeks,
		ActiveDays: uc.cfg.ActiveDays,
		ChurnDays:  uc.cfg.ChurnDays,
	})
	out := toDashboardDTO(rep)
	out.PeriodDays = periodDays
	out.SkippedRows = batch.Skipped
	return out, nil
}

func toDashboardDTO(rep sales.Report) *dto.SalesDashboardDTO {
	out := &dto.SalesDashboardDTO{
		Ref:          rep.Ref.Format(dto.DateLayout),
		Current:      toPeriodDTO(rep.Current),
		Previous:     toPeriodDTO(rep.Previous),
		VariationPct: rep.VariationPct,
		Weekly:       make([]dto.WeekDTO, 0, len(rep.Weekly)),
		Customers: dto.CustomerSplitDTO{
			New:              rep.Customers.New,
			Recurring:        rep.Customers.Recurring,
			NewRevenue:       rep.Customers.NewRevenue,
			RecurringRevenue: rep.Customers.RecurringRevenue,
		},
		Engagement: dto.EngagementDTO{
			Active:    rep.Engagement.Active,
			NearChurn: rep.Engagement.NearChurn,
			Churned:   rep.Engagement.Churned,
			Clients:   make([]dto.ClientEngagementDTO, 0, len(rep.Engagement.Clients)),
		},
		TopClients: make([]dto.TopClientDTO, 0, len(rep.TopClients)),
	}
	for _, w := range rep.Weekly {
		out.Weekly = append(out.Weekly, dto.WeekDTO{
			Start:  w.Start.Format(dto.DateLayout),
			End:    w.End.Format(dto.DateLayout),
			Total:  w.Total,
			Orders: w.Orders,
		})
	}
	for _, c := range rep.Engagement.Clients {
		out.Engagement.Clients = append(out.Engagement.Clients, dto.ClientEngagementDTO{
			Client:    c.Client,
			LastSale:  c.LastSale.Format(dto.DateLayout),
			DaysSince: c.DaysSince,
			Bucket:    c.Bucket,
			Total:     c.Total,
		})
	}
	for _, c := range rep.TopClients {
		out.TopClients = append(out.TopClients, dto.TopClientDTO{Client: c.Client, Total: c.Total, Orders: c.Orders})
	}
	return out
}

func toPeriodDTO(p sales.PeriodTotals) dto.PeriodDTO {
	return dto.PeriodDTO{
		Start:     p.Start.Format(dto.DateLayout),
		End:       p.End.Format(dto.DateLayout),
		Total:     p.Total,
		Orders:    p.Orders,
		AvgTicket: p.AvgTicket,
		Customers: p.Customers,
	}
}
