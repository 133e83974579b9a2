package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos y sus factores de conversión.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Create crea un nuevo producto activo. SKU duplicado devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	if in.SKU == "" || in.Name == "" || in.ShelfLifeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !nonNegative(in.UnitsPerBatch, in.UnitsPerTray, in.UnitsPerBox, in.UnitsPerPackage, in.KgPerUnit) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		SKU:             in.SKU,
		Name:            in.Name,
		UnitsPerBatch:   in.UnitsPerBatch,
		UnitsPerTray:    in.UnitsPerTray,
		UnitsPerBox:     in.UnitsPerBox,
		UnitsPerPackage: in.UnitsPerPackage,
		KgPerUnit:       in.KgPerUnit,
		ShelfLifeDays:   in.ShelfLifeDays,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("produto_id", product.ID).Str("sku", product.SKU).Msg("produto criado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, strings.TrimSpace(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU no se modifica (va impreso en las etiquetas).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	factors := []struct {
		in  *decimal.Decimal
		out *decimal.Decimal
	}{
		{in.UnitsPerBatch, &product.UnitsPerBatch},
		{in.UnitsPerTray, &product.UnitsPerTray},
		{in.UnitsPerBox, &product.UnitsPerBox},
		{in.UnitsPerPackage, &product.UnitsPerPackage},
		{in.KgPerUnit, &product.KgPerUnit},
	}
	for _, f := range factors {
		if f.in == nil {
			continue
		}
		if f.in.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		*f.out = *f.in
	}
	if in.ShelfLifeDays != nil {
		if *in.ShelfLifeDays < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ShelfLifeDays = *in.ShelfLifeDays
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("produto_id", id).Msg("produto removido")
	return nil
}

func nonNegative(values ...decimal.Decimal) bool {
	for _, v := range values {
		if v.IsNegative() {
			return false
		}
	}
	return true
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		UnitsPerBatch:   p.UnitsPerBatch,
		UnitsPerTray:    p.UnitsPerTray,
		UnitsPerBox:     p.UnitsPerBox,
		UnitsPerPackage: p.UnitsPerPackage,
		KgPerUnit:       p.KgPerUnit,
		ShelfLifeDays:   p.ShelfLifeDays,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
