package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// ShipmentUseCase saídas de estoque. Crear, editar o borrar una saída mueve el estoque del par
// en la misma transacción.
type ShipmentUseCase struct {
	txRunner     TxRunner
	shipmentRepo repository.ShipmentRepository
	clientRepo   repository.ClientRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(
	txRunner TxRunner,
	shipmentRepo repository.ShipmentRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		txRunner:     txRunner,
		shipmentRepo: shipmentRepo,
		clientRepo:   clientRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

// List devuelve las saídas del día (y cliente, si se indica) con su status y totales.
func (uc *ShipmentUseCase) List(ctx context.Context, date time.Time, clientID string) (*dto.ShipmentListResponse, error) {
	list, err := uc.shipmentRepo.List(ctx, repository.ShipmentFilter{Date: &date, ClientID: clientID})
	if err != nil {
		return nil, err
	}
	clientIDs := make([]string, 0, len(list))
	productIDs := make([]string, 0, len(list))
	for _, s := range list {
		clientIDs = append(clientIDs, s.ClientID)
		productIDs = append(productIDs, s.ProductID)
	}
	clients, products, err := lookupNames(ctx, uc.clientRepo, uc.productRepo, clientIDs, productIDs)
	if err != nil {
		return nil, err
	}
	out := &dto.ShipmentListResponse{Items: make([]dto.ShipmentDTO, 0, len(list))}
	for _, s := range list {
		item := toShipmentDTO(s)
		item.ClientName = clients[s.ClientID]
		item.ProductName = products[s.ProductID]
		out.Items = append(out.Items, item)
	}
	out.Totals = ShipmentTotals(list)
	return out, nil
}

// ShipmentTotals suma meta y realizado y cuenta filas por status.
func ShipmentTotals(list []*entity.Shipment) dto.ShipmentTotalsDTO {
	var t dto.ShipmentTotalsDTO
	for _, s := range list {
		t.Rows++
		t.Meta = t.Meta.Add(s.Meta)
		t.Delivered = t.Delivered.Add(s.Delivered)
		t.Status.Add(production.QuantityStatus(s.Delivered, s.Meta))
	}
	return t
}

// Create registra una saída y descuenta el realizado del estoque.
func (uc *ShipmentUseCase) Create(ctx context.Context, userID string, in dto.ShipmentRequest) (*dto.ShipmentDTO, error) {
	date, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Shipment{
		ID:        uuid.New().String(),
		Date:      date,
		ClientID:  in.ClientID,
		ProductID: in.ProductID,
		Meta:      in.Meta,
		Delivered: in.Delivered,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		shipmentRepo repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		if !s.Delivered.IsZero() {
			if _, err := ApplyStockDelta(ctx, stockRepo, s.ClientID, s.ProductID, s.Delivered.Neg(), in.ConfirmNegative, now); err != nil {
				return err
			}
		}
		return shipmentRepo.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("saida_id", s.ID).
		Str("cliente_id", s.ClientID).
		Str("produto_id", s.ProductID).
		Msg("saída registrada")
	out := toShipmentDTO(s)
	return &out, nil
}

// Update edita una saída. El estoque recibe la diferencia entre el realizado nuevo y el anterior;
// si cambió el par (cliente, produto), el anterior se devuelve entero y el nuevo se descuenta entero.
func (uc *ShipmentUseCase) Update(ctx context.Context, id string, in dto.ShipmentRequest) (*dto.ShipmentDTO, error) {
	date, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	var updated *entity.Shipment
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		shipmentRepo repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		s, err := shipmentRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		samePair := s.ClientID == in.ClientID && s.ProductID == in.ProductID
		if samePair {
			delta := in.Delivered.Sub(s.Delivered)
			if !delta.IsZero() {
				if _, err := ApplyStockDelta(ctx, stockRepo, s.ClientID, s.ProductID, delta.Neg(), in.ConfirmNegative, now); err != nil {
					return err
				}
			}
		} else {
			if !s.Delivered.IsZero() {
				if _, err := ApplyStockDelta(ctx, stockRepo, s.ClientID, s.ProductID, s.Delivered, true, now); err != nil {
					return err
				}
			}
			if !in.Delivered.IsZero() {
				if _, err := ApplyStockDelta(ctx, stockRepo, in.ClientID, in.ProductID, in.Delivered.Neg(), in.ConfirmNegative, now); err != nil {
					return err
				}
			}
		}
		s.Date = date
		s.ClientID = in.ClientID
		s.ProductID = in.ProductID
		s.Meta = in.Meta
		s.Delivered = in.Delivered
		s.Notes = strings.TrimSpace(in.Notes)
		s.UpdatedAt = now
		updated = s
		return shipmentRepo.Update(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("saida_id", id).Msg("saída atualizada")
	out := toShipmentDTO(updated)
	return &out, nil
}

// Delete borra una saída y devuelve su realizado al estoque.
func (uc *ShipmentUseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		shipmentRepo repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		s, err := shipmentRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if !s.Delivered.IsZero() {
			if _, err := ApplyStockDelta(ctx, stockRepo, s.ClientID, s.ProductID, s.Delivered, true, time.Now()); err != nil {
				return err
			}
		}
		return shipmentRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("saida_id", id).Msg("saída removida")
	return nil
}

// validate revisa el request y devuelve la fecha de la saída (hoy si viene vacía).
func (uc *ShipmentUseCase) validate(ctx context.Context, in dto.ShipmentRequest) (time.Time, error) {
	if in.ClientID == "" || in.ProductID == "" || in.Meta.HasNegative() || in.Delivered.HasNegative() {
		return time.Time{}, domain.ErrInvalidInput
	}
	if in.Meta.IsZero() && in.Delivered.IsZero() {
		return time.Time{}, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date, dto.Today())
	if err != nil {
		return time.Time{}, err
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return time.Time{}, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return time.Time{}, err
	}
	if client == nil || product == nil {
		return time.Time{}, domain.ErrNotFound
	}
	return date, nil
}

func toShipmentDTO(s *entity.Shipment) dto.ShipmentDTO {
	return dto.ShipmentDTO{
		ID:        s.ID,
		Date:      s.Date.Format(dto.DateLayout),
		ClientID:  s.ClientID,
		ProductID: s.ProductID,
		Meta:      s.Meta,
		Delivered: s.Delivered,
		Status:    production.QuantityStatus(s.Delivered, s.Meta),
		Notes:     s.Notes,
		UpdatedAt: s.UpdatedAt,
	}
}
