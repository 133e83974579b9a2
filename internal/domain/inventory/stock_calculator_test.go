package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/inventory"
)

func TestApplyDelta(t *testing.T) {
	current := entity.Quantity{Boxes: decimal.NewFromInt(5), Units: decimal.NewFromInt(3)}

	next, err := inventory.ApplyDelta(current, entity.Quantity{Boxes: decimal.NewFromInt(-2)}, false)
	require.NoError(t, err)
	assert.True(t, next.Boxes.Equal(decimal.NewFromInt(3)))
	assert.True(t, next.Units.Equal(decimal.NewFromInt(3)))
}

func TestApplyDelta_NegativoSinConfirmar(t *testing.T) {
	current := entity.Quantity{Units: decimal.NewFromInt(3)}

	next, err := inventory.ApplyDelta(current, entity.Quantity{Units: decimal.NewFromInt(-4)}, false)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, next.Equal(current), "el stock no cambia si se rechaza")
}

func TestApplyDelta_NegativoConfirmado(t *testing.T) {
	current := entity.Quantity{Units: decimal.NewFromInt(3)}

	next, err := inventory.ApplyDelta(current, entity.Quantity{Units: decimal.NewFromInt(-4)}, true)
	require.NoError(t, err)
	assert.True(t, next.Units.Equal(decimal.NewFromInt(-1)))
}

func TestApplyDelta_OtroBucketNoCompensa(t *testing.T) {
	// Tener cajas de sobra no cubre unidades faltantes.
	current := entity.Quantity{Boxes: decimal.NewFromInt(10)}
	_, err := inventory.ApplyDelta(current, entity.Quantity{Units: decimal.NewFromInt(-1)}, false)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
