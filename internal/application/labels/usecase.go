// Package labels genera las etiquetas de producto (PDF) con fabricação, validade, lote y
// código de barras del SKU.
package labels

import (
	"context"
	"strings"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// MaxCopies tope de etiquetas por request.
const MaxCopies = 200

// Label datos de una etiqueta ya resueltos.
type Label struct {
	Product        *entity.Product
	ProductionDate string // dd/mm/yyyy
	ExpiryDate     string // dd/mm/yyyy
	Lot            string
	Copies         int
}

// PDFGenerator puerto hacia el generador de PDF (infraestructura).
type PDFGenerator interface {
	GenerateLabels(label Label) ([]byte, error)
}

// LabelUseCase arma las etiquetas de un producto.
type LabelUseCase struct {
	productRepo repository.ProductRepository
	pdf         PDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(productRepo repository.ProductRepository, pdf PDFGenerator) *LabelUseCase {
	return &LabelUseCase{productRepo: productRepo, pdf: pdf}
}

// Generate devuelve el PDF con in.Copies etiquetas. La validade es data_producao + validade_dias.
func (uc *LabelUseCase) Generate(ctx context.Context, in dto.LabelRequest) ([]byte, error) {
	if in.ProductID == "" || in.Copies < 1 || in.Copies > MaxCopies {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.ProductionDate, dto.Today())
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lot := strings.TrimSpace(in.Lot)
	if lot == "" {
		lot = date.Format("20060102")
	}
	return uc.pdf.GenerateLabels(Label{
		Product:        product,
		ProductionDate: date.Format("02/01/2006"),
		ExpiryDate:     date.AddDate(0, 0, product.ShelfLifeDays).Format("02/01/2006"),
		Lot:            lot,
		Copies:         in.Copies,
	})
}
