package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// OrderFilter filtros opcionales para listar pedidos.
type OrderFilter struct {
	DeliveryDate *time.Time
	Statuses     []string
	ClientID     string
	Limit        int
	Offset       int
}

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
