package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU             string          `json:"sku" yaml:"sku"`
	Name            string          `json:"nome" yaml:"nome"`
	UnitsPerBatch   decimal.Decimal `json:"unidades_por_massa" yaml:"unidades_por_massa"`
	UnitsPerTray    decimal.Decimal `json:"unidades_por_assadeira" yaml:"unidades_por_assadeira"`
	UnitsPerBox     decimal.Decimal `json:"unidades_por_caixa" yaml:"unidades_por_caixa"`
	UnitsPerPackage decimal.Decimal `json:"unidades_por_pacote" yaml:"unidades_por_pacote"`
	KgPerUnit       decimal.Decimal `json:"kg_por_unidade" yaml:"kg_por_unidade"`
	ShelfLifeDays   int             `json:"validade_dias" yaml:"validade_dias"`
}

// UpdateProductRequest entrada para actualizar un producto; campos nil no cambian.
type UpdateProductRequest struct {
	Name            *string          `json:"nome"`
	UnitsPerBatch   *decimal.Decimal `json:"unidades_por_massa"`
	UnitsPerTray    *decimal.Decimal `json:"unidades_por_assadeira"`
	UnitsPerBox     *decimal.Decimal `json:"unidades_por_caixa"`
	UnitsPerPackage *decimal.Decimal `json:"unidades_por_pacote"`
	KgPerUnit       *decimal.Decimal `json:"kg_por_unidade"`
	ShelfLifeDays   *int             `json:"validade_dias"`
	Active          *bool            `json:"ativo"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"nome"`
	UnitsPerBatch   decimal.Decimal `json:"unidades_por_massa"`
	UnitsPerTray    decimal.Decimal `json:"unidades_por_assadeira"`
	UnitsPerBox     decimal.Decimal `json:"unidades_por_caixa"`
	UnitsPerPackage decimal.Decimal `json:"unidades_por_pacote"`
	KgPerUnit       decimal.Decimal `json:"kg_por_unidade"`
	ShelfLifeDays   int             `json:"validade_dias"`
	Active          bool            `json:"ativo"`
	CreatedAt       time.Time       `json:"criado_em"`
	UpdatedAt       time.Time       `json:"atualizado_em"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name     string `json:"nome" yaml:"nome"`
	Document string `json:"documento" yaml:"documento"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	Name     *string `json:"nome"`
	Document *string `json:"documento"`
	Active   *bool   `json:"ativo"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Document  string    `json:"documento"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

// ClientListResponse listado paginado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
