package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		produced, meta string
		want           production.Status
	}{
		{"0", "10", production.StatusNotStarted},
		{"4", "10", production.StatusPartial},
		{"10", "10", production.StatusComplete},
		{"12", "10", production.StatusComplete},
		{"0", "0", production.StatusNotStarted},
		{"3", "0", production.StatusComplete},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, production.StatusOf(d(tt.produced), d(tt.meta)),
			"produced=%s meta=%s", tt.produced, tt.meta)
	}
}

func TestQuantityStatus(t *testing.T) {
	meta := entity.Quantity{Boxes: d("4"), Packages: d("2")}

	assert.Equal(t, production.StatusNotStarted, production.QuantityStatus(entity.Quantity{}, meta))
	assert.Equal(t, production.StatusPartial, production.QuantityStatus(entity.Quantity{Boxes: d("4")}, meta))
	assert.Equal(t, production.StatusComplete, production.QuantityStatus(entity.Quantity{Boxes: d("4"), Packages: d("3")}, meta))
}

func TestProgress(t *testing.T) {
	assert.True(t, production.Progress(d("1"), d("3")).Equal(d("33.33")))
	assert.True(t, production.Progress(d("5"), d("3")).Equal(d("100")))
	assert.True(t, production.Progress(d("0"), d("0")).IsZero())
	assert.True(t, production.Progress(d("2"), d("0")).Equal(d("100")))
}

func TestStatusCounts(t *testing.T) {
	var c production.StatusCounts
	c.Add(production.StatusComplete)
	c.Add(production.StatusPartial)
	c.Add(production.StatusPartial)
	c.Add(production.StatusNotStarted)
	assert.Equal(t, production.StatusCounts{Complete: 1, Partial: 2, NotStarted: 1}, c)
}

func TestParseStage(t *testing.T) {
	st, err := production.ParseStage("forno")
	assert.NoError(t, err)
	assert.Equal(t, production.StageOven, st)

	_, err = production.ParseStage("saidas")
	assert.Error(t, err)
}
