package repository

import (
	"context"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por (cliente, producto).
// No hay constraint único en la DB: Lock + Get + Save dentro de una transacción garantizan
// una sola fila por par.
type StockRepository interface {
	// Lock toma un lock exclusivo del par hasta el fin de la transacción.
	Lock(ctx context.Context, clientID, productID string) error
	// Get devuelve nil, nil si el par no tiene fila.
	Get(ctx context.Context, clientID, productID string) (*entity.Stock, error)
	// Save inserta o actualiza la fila del par.
	Save(ctx context.Context, stock *entity.Stock) error
	List(ctx context.Context, clientID string) ([]*entity.Stock, error)
	Delete(ctx context.Context, clientID, productID string) error
}
