package entity

import "time"

// Client representa un cliente (tienda, mercado, cafetería) que recibe pedidos y saídas.
type Client struct {
	ID        string
	Name      string
	Document  string // CNPJ/CPF, opcional
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
