package entity

import "time"

// Stock (EstoqueRecord) es el stock de un producto para un cliente.
// Hay como máximo una fila por (ClientID, ProductID); la unicidad la garantiza el upsert de la aplicación.
type Stock struct {
	ClientID           string
	ProductID          string
	Quantity           Quantity
	UpdatedAt          time.Time
	InventoryUpdatedAt *time.Time // último conteo físico (inventário)
}
