// Package memory implementa los puertos de repositorio en memoria. Lo usan los tests de
// casos de uso y de handlers para correr sin Postgres.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner              = (*Store)(nil)
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.ProductRepository    = (*ProductRepo)(nil)
	_ repository.ClientRepository     = (*ClientRepo)(nil)
	_ repository.OrderRepository      = (*OrderRepo)(nil)
	_ repository.ProductionRepository = (*ProductionRepo)(nil)
	_ repository.StockRepository      = (*StockRepo)(nil)
	_ repository.ShipmentRepository   = (*ShipmentRepo)(nil)
)

// Store guarda todas las tablas. Las transacciones se serializan con txMu y se deshacen
// restaurando una copia de las tablas si fn devuelve error.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	users      map[string]entity.User
	products   map[string]entity.Product
	clients    map[string]entity.Client
	orders     map[string]entity.Order
	production map[string]entity.ProductionRecord
	stock      map[string]entity.Stock
	shipments  map[string]entity.Shipment
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:      map[string]entity.User{},
		products:   map[string]entity.Product{},
		clients:    map[string]entity.Client{},
		orders:     map[string]entity.Order{},
		production: map[string]entity.ProductionRecord{},
		stock:      map[string]entity.Stock{},
		shipments:  map[string]entity.Shipment{},
	}
}

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Clients repositorio de clientes.
func (s *Store) Clients() *ClientRepo { return &ClientRepo{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Orders repositorio de pedidos.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Production repositorio de filas de producción.
func (s *Store) Production() *ProductionRepo { return &ProductionRepo{s: s} }

// Stock repositorio de estoque.
func (s *Store) Stock() *StockRepo { return &StockRepo{s: s} }

// Shipments repositorio de saídas.
func (s *Store) Shipments() *ShipmentRepo { return &ShipmentRepo{s: s} }

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	shipmentRepo repository.ShipmentRepository,
	productionRepo repository.ProductionRepository,
	orderRepo repository.OrderRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(s.Stock(), s.Shipments(), s.Production(), s.Orders()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	orders     map[string]entity.Order
	production map[string]entity.ProductionRecord
	stock      map[string]entity.Stock
	shipments  map[string]entity.Shipment
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		orders:     cloneMap(s.orders),
		production: cloneMap(s.production),
		stock:      cloneMap(s.stock),
		shipments:  cloneMap(s.shipments),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = snap.orders
	s.production = snap.production
	s.stock = snap.stock
	s.shipments = snap.shipments
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
