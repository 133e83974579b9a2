package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderPending    = "pendente"
	OrderInProgress = "em_producao"
	OrderPacked     = "embalado"
	OrderDelivered  = "entregue"
	OrderCancelled  = "cancelado"
)

// Order (pedido) es la intención de un cliente de recibir cierta cantidad de un producto en una fecha.
type Order struct {
	ID           string
	ClientID     string
	ProductID    string
	Quantity     Quantity
	DeliveryDate time.Time // solo fecha
	Status       string
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// orderTransitions estados alcanzables con un cambio manual: la cadena
// pendente, em_producao, embalado, entregue más cancelar.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderPacked, OrderCancelled},
	OrderPacked:     {OrderDelivered, OrderCancelled},
}

// ValidOrderStatus indica si s es un estado conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderInProgress, OrderPacked, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransition indica si el pedido puede pasar de su estado actual a next.
// entregue y cancelado son finales.
func (o *Order) CanTransition(next string) bool {
	if o.Status == next {
		return true
	}
	for _, s := range orderTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsFinal indica si el pedido está entregue o cancelado.
func (o *Order) IsFinal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}

// StatusAfterPacking estado que deja el embalaje: embalado si packed cubre ordered, si no
// em_producao. Puede saltar de pendente a embalado o volver de embalado a em_producao si la
// cantidad del pedido creció. Un pedido final conserva su estado.
func (o *Order) StatusAfterPacking(packed, ordered decimal.Decimal) string {
	if o.IsFinal() {
		return o.Status
	}
	if packed.GreaterThanOrEqual(ordered) {
		return OrderPacked
	}
	return OrderInProgress
}
