package dto

import "github.com/shopspring/decimal"

// PeriodDTO totales de una ventana del dashboard.
type PeriodDTO struct {
	Start     string          `json:"inicio"`
	End       string          `json:"fim"`
	Total     decimal.Decimal `json:"total"`
	Orders    int             `json:"vendas"`
	AvgTicket decimal.Decimal `json:"ticket_medio"`
	Customers int             `json:"clientes"`
}

// WeekDTO punto de la serie semanal.
type WeekDTO struct {
	Start  string          `json:"inicio"`
	End    string          `json:"fim"`
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"vendas"`
}

// CustomerSplitDTO clientes nuevos vs recurrentes.
type CustomerSplitDTO struct {
	New              int             `json:"novos"`
	Recurring        int             `json:"recorrentes"`
	NewRevenue       decimal.Decimal `json:"receita_novos"`
	RecurringRevenue decimal.Decimal `json:"receita_recorrentes"`
}

// ClientEngagementDTO situación de un cliente.
type ClientEngagementDTO struct {
	Client    string          `json:"cliente"`
	LastSale  string          `json:"ultima_compra"`
	DaysSince int             `json:"dias_sem_comprar"`
	Bucket    string          `json:"situacao"`
	Total     decimal.Decimal `json:"total"`
}

// EngagementDTO buckets de engajamento.
type EngagementDTO struct {
	Active    int                   `json:"ativos"`
	NearChurn int                   `json:"em_risco"`
	Churned   int                   `json:"perdidos"`
	Clients   []ClientEngagementDTO `json:"clientes"`
}

// TopClientDTO cliente del ranking.
type TopClientDTO struct {
	Client string          `json:"cliente"`
	Total  decimal.Decimal `json:"total"`
	Orders int             `json:"vendas"`
}

// SalesDashboardDTO respuesta de GET /api/dashboard/vendas.
type SalesDashboardDTO struct {
	Ref          string           `json:"referencia"`
	PeriodDays   int              `json:"periodo_dias"`
	Current      PeriodDTO        `json:"atual"`
	Previous     PeriodDTO        `json:"anterior"`
	VariationPct *decimal.Decimal `json:"variacao_pct"`
	Weekly       []WeekDTO        `json:"semanal"`
	Customers    CustomerSplitDTO `json:"clientes"`
	Engagement   EngagementDTO    `json:"engajamento"`
	TopClients   []TopClientDTO   `json:"top_clientes"`
	SkippedRows  int              `json:"linhas_ignoradas"`
}
