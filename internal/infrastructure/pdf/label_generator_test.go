package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/labels"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/pdf"
)

func TestGenerateLabels_DevuelvePDF(t *testing.T) {
	g := pdf.NewLabelGenerator()
	out, err := g.GenerateLabels(labels.Label{
		Product:        &entity.Product{ID: "p1", SKU: "PAO-FRANCES", Name: "Pão francês"},
		ProductionDate: "19/10/2026",
		ExpiryDate:     "22/10/2026",
		Lot:            "20261019",
		Copies:         3,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateLabels_SinProducto(t *testing.T) {
	_, err := pdf.NewLabelGenerator().GenerateLabels(labels.Label{Copies: 1})
	assert.Error(t, err)
}
