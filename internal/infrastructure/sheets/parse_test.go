package sheets

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/domain"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"R$ 1.234,56":  "1234.56",
		"1234.56":      "1234.56",
		"R$12,5":       "12.5",
		"  300 ":       "300",
		"1.000.000,00": "1000000",
		"R$ 1.234":     "1234",
		"2.500":        "2500",
		"12.50":        "12.5",
		"-R$ 10,00":    "-10",
		"R$ -3,5":      "-3.5",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s -> %s", in, got)
	}

	_, err := ParseAmount("")
	assert.Error(t, err)
	_, err = ParseAmount("abc")
	assert.Error(t, err)
	_, err = ParseAmount("-R$")
	assert.Error(t, err)
}

func TestParseDate_Formatos(t *testing.T) {
	want := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"31/03/2026", "2026-03-31", "31/03/26", "31/03/2026 14:05"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDate("março")
	assert.Error(t, err)
}

func TestParseRows_EncabezadoYFilasMalFormadas(t *testing.T) {
	values := [][]any{
		{"Cliente", "Data", "Valor (R$)"},
		{"Mercado Central", "31/03/2026", "R$ 150,00"},
		{"Café Aurora", "2026-03-30", "80.5"},
		{"", "30/03/2026", "10"},         // sin cliente
		{"Padaria Velha", "ontem", "10"}, // fecha inválida
		{"Padaria Velha", "29/03/2026"},  // sin valor
		{},                               // vacía: se ignora sin contar
		{"Mercado Central", "28/03/2026", 42.0},
		{"Café Aurora", "27/03/2026", 1.234}, // celda numérica: sin separador de miles
	}

	batch, err := ParseRows(values)
	require.NoError(t, err)
	require.Len(t, batch.Sales, 4)
	assert.Equal(t, 3, batch.Skipped)
	assert.Equal(t, "Mercado Central", batch.Sales[0].Client)
	assert.True(t, batch.Sales[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, batch.Sales[2].Amount.Equal(decimal.NewFromInt(42)))
	assert.True(t, batch.Sales[3].Amount.Equal(decimal.RequireFromString("1.234")))
}

func TestParseRows_SinColumnas(t *testing.T) {
	_, err := ParseRows([][]any{{"foo", "bar"}})
	assert.True(t, errors.Is(err, domain.ErrSheetUnavailable))

	_, err = ParseRows(nil)
	assert.True(t, errors.Is(err, domain.ErrSheetUnavailable))
}
