package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// OrderUseCase casos de uso de pedidos: alta, edición, listado y transición de estado.
type OrderUseCase struct {
	orders   repository.OrderRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, clients: clients, products: products, log: log}
}

// OrderListFilter filtros del listado tal como llegan en la query.
type OrderListFilter struct {
	DeliveryDate string
	Status       string // lista separada por comas
	ClientID     string
	Limit        int
	Offset       int
}

// Create registra un pedido pendente.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ClientID == "" || in.ProductID == "" || !validOrderQuantity(in.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	delivery, err := dto.ParseDate(in.DeliveryDate, time.Time{})
	if err != nil || delivery.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(ctx, in.ClientID, in.ProductID); err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		ClientID:     in.ClientID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		DeliveryDate: delivery,
		Status:       entity.OrderPending,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("pedido_id", order.ID).
		Str("cliente_id", order.ClientID).
		Str("produto_id", order.ProductID).
		Msg("pedido criado")
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update edita cantidad, fecha u observación. Pedidos entregues o cancelados no se editan.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.IsFinal() {
		return nil, domain.ErrConflict
	}
	if in.Quantity != nil {
		if !validOrderQuantity(*in.Quantity) {
			return nil, domain.ErrInvalidInput
		}
		order.Quantity = *in.Quantity
	}
	if in.DeliveryDate != nil {
		d, err := dto.ParseDate(*in.DeliveryDate, time.Time{})
		if err != nil || d.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		order.DeliveryDate = d
	}
	if in.Notes != nil {
		order.Notes = strings.TrimSpace(*in.Notes)
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus mueve el pedido a status; transiciones no permitidas devuelven ErrConflict.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.CanTransition(status) {
		return nil, domain.ErrConflict
	}
	prev := order.Status
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	uc.log.Info().Str("pedido_id", id).Str("de", prev).Str("para", status).Msg("status do pedido")
	return toOrderResponse(order), nil
}

// List lista pedidos con filtros opcionales de fecha de entrega, estados y cliente.
func (uc *OrderUseCase) List(ctx context.Context, f OrderListFilter) (*dto.OrderListResponse, error) {
	filter := repository.OrderFilter{ClientID: f.ClientID, Limit: f.Limit, Offset: f.Offset}
	if f.DeliveryDate != "" {
		d, err := dto.ParseDate(f.DeliveryDate, time.Time{})
		if err != nil {
			return nil, err
		}
		filter.DeliveryDate = &d
	}
	for _, s := range strings.Split(f.Status, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !entity.ValidOrderStatus(s) {
			return nil, domain.ErrInvalidInput
		}
		filter.Statuses = append(filter.Statuses, s)
	}
	list, err := uc.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Delete elimina un pedido.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.orders.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("pedido_id", id).Msg("pedido removido")
	return nil
}

func (uc *OrderUseCase) get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *OrderUseCase) checkRefs(ctx context.Context, clientID, productID string) error {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return nil
}

// validOrderQuantity: sin buckets negativos y al menos uno distinto de cero.
func validOrderQuantity(q entity.Quantity) bool {
	return !q.HasNegative() && !q.IsZero()
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		ClientID:     o.ClientID,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		DeliveryDate: o.DeliveryDate.Format(dto.DateLayout),
		Status:       o.Status,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
