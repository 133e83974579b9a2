package dto

import (
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
)

// StockDTO salida de un registro de estoque.
type StockDTO struct {
	ClientID           string          `json:"cliente_id"`
	ClientName         string          `json:"cliente,omitempty"`
	ProductID          string          `json:"produto_id"`
	ProductName        string          `json:"produto,omitempty"`
	Quantity           entity.Quantity `json:"quantidade"`
	UpdatedAt          time.Time       `json:"atualizado_em"`
	InventoryUpdatedAt *time.Time      `json:"inventario_atualizado_em,omitempty"`
}

// AdjustStockRequest body para POST /api/estoque/ajuste (delta con signo).
type AdjustStockRequest struct {
	ClientID        string          `json:"cliente_id"`
	ProductID       string          `json:"produto_id"`
	Delta           entity.Quantity `json:"delta"`
	ConfirmNegative bool            `json:"confirmar_negativo"`
}

// InventoryCountRequest body para PUT /api/estoque/inventario (valores absolutos).
type InventoryCountRequest struct {
	ClientID  string          `json:"cliente_id"`
	ProductID string          `json:"produto_id"`
	Quantity  entity.Quantity `json:"quantidade"`
}

// ShipmentRequest body para crear/editar una saída.
type ShipmentRequest struct {
	Date            string          `json:"data"`
	ClientID        string          `json:"cliente_id"`
	ProductID       string          `json:"produto_id"`
	Meta            entity.Quantity `json:"meta"`
	Delivered       entity.Quantity `json:"realizado"`
	Notes           string          `json:"observacao"`
	ConfirmNegative bool            `json:"confirmar_negativo"`
}

// ShipmentDTO salida de una saída con su clasificación.
type ShipmentDTO struct {
	ID          string            `json:"id"`
	Date        string            `json:"data"`
	ClientID    string            `json:"cliente_id"`
	ClientName  string            `json:"cliente,omitempty"`
	ProductID   string            `json:"produto_id"`
	ProductName string            `json:"produto,omitempty"`
	Meta        entity.Quantity   `json:"meta"`
	Delivered   entity.Quantity   `json:"realizado"`
	Status      production.Status `json:"status"`
	Notes       string            `json:"observacao"`
	UpdatedAt   time.Time         `json:"atualizado_em"`
}

// ShipmentListResponse listado de saídas con totales.
type ShipmentListResponse struct {
	Items  []ShipmentDTO     `json:"items"`
	Totals ShipmentTotalsDTO `json:"totais"`
}
