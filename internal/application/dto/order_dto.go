package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/pedidos.
type CreateOrderRequest struct {
	ClientID     string          `json:"cliente_id"`
	ProductID    string          `json:"produto_id"`
	Quantity     entity.Quantity `json:"quantidade"`
	DeliveryDate string          `json:"data_entrega"` // YYYY-MM-DD
	Notes        string          `json:"observacao"`
}

// UpdateOrderRequest body para PUT /api/pedidos/:id.
type UpdateOrderRequest struct {
	Quantity     *entity.Quantity `json:"quantidade"`
	DeliveryDate *string          `json:"data_entrega"`
	Notes        *string          `json:"observacao"`
}

// UpdateOrderStatusRequest body para PATCH /api/pedidos/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"cliente_id"`
	ProductID    string          `json:"produto_id"`
	Quantity     entity.Quantity `json:"quantidade"`
	DeliveryDate string          `json:"data_entrega"`
	Status       string          `json:"status"`
	Notes        string          `json:"observacao"`
	CreatedAt    time.Time       `json:"criado_em"`
	UpdatedAt    time.Time       `json:"atualizado_em"`
}

// OrderListResponse listado de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StationQuantityDTO meta de una estación para un producto.
type StationQuantityDTO struct {
	Stage string          `json:"estagio"`
	Value decimal.Decimal `json:"meta"`
	Unit  string          `json:"unidade"`
	Kg    decimal.Decimal `json:"kg,omitempty"`
}

// PlanItemDTO plan de un producto.
type PlanItemDTO struct {
	ProductID   string               `json:"produto_id"`
	ProductName string               `json:"produto"`
	Units       decimal.Decimal      `json:"unidades"`
	Stations    []StationQuantityDTO `json:"estacoes"`
}

// PlanResponse respuesta de POST /api/producao/plano.
type PlanResponse struct {
	Date   string        `json:"data"`
	Orders int           `json:"pedidos"`
	Items  []PlanItemDTO `json:"itens"`
}
