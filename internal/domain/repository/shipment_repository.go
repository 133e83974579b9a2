package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// ShipmentFilter filtros para listar saídas.
type ShipmentFilter struct {
	Date     *time.Time
	ClientID string
}

// ShipmentRepository define el puerto de persistencia para saídas.
type ShipmentRepository interface {
	Create(ctx context.Context, s *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Shipment, error)
	Update(ctx context.Context, s *entity.Shipment) error
	List(ctx context.Context, f ShipmentFilter) ([]*entity.Shipment, error)
	Delete(ctx context.Context, id string) error
}
