package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
)

func TestTodayAt_ZonaDeLaPadaria(t *testing.T) {
	t.Cleanup(func() { dto.SetLocation(nil) })
	// 01:30 UTC del 20/10 todavía es 19/10 en São Paulo.
	now := time.Date(2026, 10, 20, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), dto.TodayAt(now), "sin zona: UTC")

	dto.SetLocation(time.FixedZone("BRT", -3*60*60))
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), dto.TodayAt(now))

	got, err := dto.ParseDate("", dto.TodayAt(now))
	require.NoError(t, err)
	assert.Equal(t, 19, got.Day())
}
