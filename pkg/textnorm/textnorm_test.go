package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Padaria-api/pkg/textnorm"
)

func TestKey(t *testing.T) {
	cases := map[string]string{
		"Padaria São João":    "padaria sao joao",
		"  PÃO   de  Queijo ": "pao de queijo",
		"Açúcar":              "acucar",
		"":                    "",
		"mercado-central 24h": "mercado-central 24h",
	}
	for in, want := range cases {
		assert.Equal(t, want, textnorm.Key(in), "entrada %q", in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, textnorm.Contains("Pão Francês", "frances"))
	assert.True(t, textnorm.Contains("Pão Francês", ""))
	assert.False(t, textnorm.Contains("Broa", "pão"))
}
