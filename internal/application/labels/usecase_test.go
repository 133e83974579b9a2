package labels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/labels"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/memory"
)

type pdfStub struct {
	calls int
	last  labels.Label
}

func (p *pdfStub) GenerateLabels(l labels.Label) ([]byte, error) {
	p.calls++
	p.last = l
	return []byte("%PDF"), nil
}

func setup(t *testing.T) (*labels.LabelUseCase, *pdfStub) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(context.Background(), &entity.Product{
		ID: "p1", SKU: "7890001", Name: "Pão de queijo", ShelfLifeDays: 5, Active: true,
	}))
	pdf := &pdfStub{}
	return labels.NewLabelUseCase(store.Products(), pdf), pdf
}

func TestGenerate_ValidadeYLotePorDefecto(t *testing.T) {
	uc, pdf := setup(t)

	out, err := uc.Generate(context.Background(), dto.LabelRequest{ProductID: "p1", ProductionDate: "2026-02-27", Copies: 4})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)

	assert.Equal(t, "27/02/2026", pdf.last.ProductionDate)
	assert.Equal(t, "04/03/2026", pdf.last.ExpiryDate)
	assert.Equal(t, "20260227", pdf.last.Lot)
	assert.Equal(t, 4, pdf.last.Copies)
	assert.Equal(t, "7890001", pdf.last.Product.SKU)
}

func TestGenerate_LoteExplicito(t *testing.T) {
	uc, pdf := setup(t)
	_, err := uc.Generate(context.Background(), dto.LabelRequest{ProductID: "p1", Lot: "  L-42 ", Copies: 1})
	require.NoError(t, err)
	assert.Equal(t, "L-42", pdf.last.Lot)
}

func TestGenerate_Validaciones(t *testing.T) {
	uc, pdf := setup(t)
	ctx := context.Background()

	for _, in := range []dto.LabelRequest{
		{ProductID: "p1", Copies: 0},
		{ProductID: "p1", Copies: labels.MaxCopies + 1},
		{ProductID: "", Copies: 1},
		{ProductID: "p1", Copies: 1, ProductionDate: "ontem"},
	} {
		_, err := uc.Generate(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}

	_, err := uc.Generate(ctx, dto.LabelRequest{ProductID: "nope", Copies: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, pdf.calls)
}
