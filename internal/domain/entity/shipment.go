package entity

import "time"

// Shipment (saída) es un envío de stock hacia un cliente. Meta es lo planeado y
// Delivered (realizado) lo que efectivamente salió del stock.
type Shipment struct {
	ID        string
	Date      time.Time // solo fecha
	ClientID  string
	ProductID string
	Meta      Quantity
	Delivered Quantity
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
