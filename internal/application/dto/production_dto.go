package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
)

// SubmitProductionRequest body para POST /api/submit/:estagio.
type SubmitProductionRequest struct {
	Date      string           `json:"data"`
	ProductID string           `json:"produto_id"`
	Produced  decimal.Decimal  `json:"produzido"`
	Meta      *decimal.Decimal `json:"meta,omitempty"`
	Notes     string           `json:"observacao"`
}

// UpdateProductionRequest body para PUT /api/producao/:estagio/:rowId.
type UpdateProductionRequest struct {
	Meta     *decimal.Decimal `json:"meta"`
	Produced *decimal.Decimal `json:"produzido"`
	Notes    *string          `json:"observacao"`
}

// PackOrderRequest body para POST /api/submit/embalagem-pedido.
type PackOrderRequest struct {
	OrderID  string          `json:"pedido_id"`
	Date     string          `json:"data"`
	Quantity entity.Quantity `json:"quantidade"`
}

// PackOrderResponse resultado del embalaje de un pedido.
type PackOrderResponse struct {
	OrderID     string          `json:"pedido_id"`
	OrderStatus string          `json:"status_pedido"`
	PackedUnits decimal.Decimal `json:"unidades_embaladas"`
	OrderUnits  decimal.Decimal `json:"unidades_pedido"`
	Stock       StockDTO        `json:"estoque"`
}

// ProductionRowDTO fila del painel de una estación.
type ProductionRowDTO struct {
	ID          string            `json:"id"`
	Date        string            `json:"data"`
	Stage       string            `json:"estagio"`
	ProductID   string            `json:"produto_id"`
	ProductName string            `json:"produto"`
	OrderID     string            `json:"pedido_id,omitempty"`
	Meta        decimal.Decimal   `json:"meta"`
	Produced    decimal.Decimal   `json:"produzido"`
	Unit        string            `json:"unidade"`
	Status      production.Status `json:"status"`
	Progress    decimal.Decimal   `json:"progresso"`
	Notes       string            `json:"observacao"`
}

// StageTotalsDTO totales de una estación en un día.
// Unit vacío indica filas en unidades distintas.
type StageTotalsDTO struct {
	Rows     int                     `json:"linhas"`
	Meta     decimal.Decimal         `json:"meta"`
	Produced decimal.Decimal         `json:"produzido"`
	Unit     string                  `json:"unidade"`
	Progress decimal.Decimal         `json:"progresso"`
	Status   production.StatusCounts `json:"status"`
}

// PanelResponse respuesta de GET /api/painel/:estagio.
type PanelResponse struct {
	Date   string             `json:"data"`
	Stage  string             `json:"estagio"`
	Label  string             `json:"titulo"`
	Rows   []ProductionRowDTO `json:"linhas"`
	Totals StageTotalsDTO     `json:"totais"`
}

// ShipmentTotalsDTO totales de saídas de un día.
type ShipmentTotalsDTO struct {
	Rows      int                     `json:"linhas"`
	Meta      entity.Quantity         `json:"meta"`
	Delivered entity.Quantity         `json:"realizado"`
	Status    production.StatusCounts `json:"status"`
}

// DailySummaryDTO respuesta de GET /api/resumo-diario.
type DailySummaryDTO struct {
	Date      string                    `json:"data"`
	Stages    map[string]StageTotalsDTO `json:"estagios"`
	Shipments ShipmentTotalsDTO         `json:"saidas"`
}
