package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

type fakeSource struct {
	calls int
	err   error
}

func (f *fakeSource) FetchSales(ctx context.Context) (*repository.SalesBatch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &repository.SalesBatch{Sales: []entity.Sale{{Client: "A"}}, Skipped: 1}, nil
}

func TestCachedSalesSource_TTL(t *testing.T) {
	src := &fakeSource{}
	now := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)
	c := NewCachedSalesSource(src, time.Minute, logger.Nop())
	c.now = func() time.Time { return now }

	_, err := c.FetchSales(context.Background())
	require.NoError(t, err)
	_, err = c.FetchSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "dentro del TTL usa la cache")

	now = now.Add(61 * time.Second)
	batch, err := c.FetchSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 1, batch.Skipped)
}

func TestCachedSalesSource_ErrorNoSeCachea(t *testing.T) {
	src := &fakeSource{err: domain.ErrSheetUnavailable}
	c := NewCachedSalesSource(src, time.Minute, logger.Nop())

	_, err := c.FetchSales(context.Background())
	assert.True(t, errors.Is(err, domain.ErrSheetUnavailable))

	src.err = nil
	_, err = c.FetchSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}
