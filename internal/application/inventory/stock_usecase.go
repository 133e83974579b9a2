package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// StockUseCase estoque por (cliente, produto): consulta, ajuste con delta, inventário y export.
type StockUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	exporter    StockExporter
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	exporter StockExporter,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		stockRepo:   stockRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		exporter:    exporter,
		log:         log,
	}
}

// List lista el estoque; clientID vacío = todos los clientes.
func (uc *StockUseCase) List(ctx context.Context, clientID string) ([]dto.StockDTO, error) {
	list, err := uc.stockRepo.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(ctx, list)
}

// Get devuelve el estoque de un par. Un par sin fila devuelve ErrNotFound.
func (uc *StockUseCase) Get(ctx context.Context, clientID, productID string) (*dto.StockDTO, error) {
	stock, err := uc.stockRepo.Get(ctx, clientID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	out, err := uc.toDTOs(ctx, []*entity.Stock{stock})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Adjust suma un delta con signo. Si algún bucket queda negativo devuelve ErrInsufficientStock,
// salvo que in.ConfirmNegative sea true.
func (uc *StockUseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.StockDTO, error) {
	if in.ClientID == "" || in.ProductID == "" || in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPair(ctx, in.ClientID, in.ProductID); err != nil {
		return nil, err
	}
	var stock *entity.Stock
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		var err error
		stock, err = ApplyStockDelta(ctx, stockRepo, in.ClientID, in.ProductID, in.Delta, in.ConfirmNegative, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("cliente_id", in.ClientID).
		Str("produto_id", in.ProductID).
		Bool("confirmar_negativo", in.ConfirmNegative).
		Msg("ajuste de estoque")
	return uc.single(ctx, stock)
}

// SetInventory registra un conteo físico: reemplaza las cantidades (no negativas) y marca
// inventario_atualizado_em.
func (uc *StockUseCase) SetInventory(ctx context.Context, in dto.InventoryCountRequest) (*dto.StockDTO, error) {
	if in.ClientID == "" || in.ProductID == "" || in.Quantity.HasNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPair(ctx, in.ClientID, in.ProductID); err != nil {
		return nil, err
	}
	var stock *entity.Stock
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		if err := stockRepo.Lock(ctx, in.ClientID, in.ProductID); err != nil {
			return err
		}
		current, err := stockRepo.Get(ctx, in.ClientID, in.ProductID)
		if err != nil {
			return err
		}
		if current == nil {
			current = &entity.Stock{ClientID: in.ClientID, ProductID: in.ProductID}
		}
		now := time.Now()
		current.Quantity = in.Quantity
		current.UpdatedAt = now
		current.InventoryUpdatedAt = &now
		stock = current
		return stockRepo.Save(ctx, current)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("cliente_id", in.ClientID).Str("produto_id", in.ProductID).Msg("inventário registrado")
	return uc.single(ctx, stock)
}

// Delete elimina la fila de un par.
func (uc *StockUseCase) Delete(ctx context.Context, clientID, productID string) error {
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ShipmentRepository,
		_ repository.ProductionRepository,
		_ repository.OrderRepository,
	) error {
		if err := stockRepo.Lock(ctx, clientID, productID); err != nil {
			return err
		}
		return stockRepo.Delete(ctx, clientID, productID)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("cliente_id", clientID).Str("produto_id", productID).Msg("estoque removido")
	return nil
}

// Export genera el XLSX con todo el estoque.
func (uc *StockUseCase) Export(ctx context.Context) ([]byte, error) {
	rows, err := uc.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportStock(rows)
}

func (uc *StockUseCase) checkPair(ctx context.Context, clientID, productID string) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if client == nil || product == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *StockUseCase) single(ctx context.Context, stock *entity.Stock) (*dto.StockDTO, error) {
	out, err := uc.toDTOs(ctx, []*entity.Stock{stock})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// toDTOs completa los nombres de cliente y producto en dos consultas.
func (uc *StockUseCase) toDTOs(ctx context.Context, list []*entity.Stock) ([]dto.StockDTO, error) {
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
	out := make([]dto.StockDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.StockDTO{
			ClientID:           s.ClientID,
			ClientName:         clients[s.ClientID],
			ProductID:          s.ProductID,
			ProductName:        products[s.ProductID],
			Quantity:           s.Quantity,
			UpdatedAt:          s.UpdatedAt,
			InventoryUpdatedAt: s.InventoryUpdatedAt,
		})
	}
	return out, nil
}

// lookupNames devuelve nombre por ID de clientes y productos.
func lookupNames(
	ctx context.Context,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	clientIDs, productIDs []string,
) (map[string]string, map[string]string, error) {
	clientNames := make(map[string]string)
	productNames := make(map[string]string)
	if len(clientIDs) > 0 {
		clients, err := clientRepo.GetByIDs(ctx, clientIDs)
		if err != nil {
			return nil, nil, err
		}
		for id, c := range clients {
			clientNames[id] = c.Name
		}
	}
	if len(productIDs) > 0 {
		products, err := productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, nil, err
		}
		for id, p := range products {
			productNames[id] = p.Name
		}
	}
	return clientNames, productNames, nil
}
