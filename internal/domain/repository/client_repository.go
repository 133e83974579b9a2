package repository

import (
	"context"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Client, error)
	// GetByIDs devuelve los clientes encontrados indexados por ID.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Client, error)
	Delete(ctx context.Context, id string) error
}
