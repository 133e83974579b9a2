package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

var _ repository.SalesSource = (*CachedSalesSource)(nil)

// CachedSalesSource guarda la última lectura durante ttl. Requests concurrentes con la cache
// vencida esperan una única lectura.
type CachedSalesSource struct {
	src repository.SalesSource
	ttl time.Duration
	log *logger.Logger
	now func() time.Time

	mu        sync.Mutex
	batch     *repository.SalesBatch
	fetchedAt time.Time
}

// NewCachedSalesSource envuelve src con una cache de ttl.
func NewCachedSalesSource(src repository.SalesSource, ttl time.Duration, log *logger.Logger) *CachedSalesSource {
	return &CachedSalesSource{src: src, ttl: ttl, log: log, now: time.Now}
}

// FetchSales devuelve la cache vigente o lee de nuevo la fuente.
func (c *CachedSalesSource) FetchSales(ctx context.Context) (*repository.SalesBatch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.batch != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.batch, nil
	}
	batch, err := c.src.FetchSales(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("leitura da planilha falhou")
		return nil, err
	}
	if batch.Skipped > 0 {
		c.log.Info().Int("linhas_ignoradas", batch.Skipped).Int("vendas", len(batch.Sales)).Msg("planilha lida")
	}
	c.batch = batch
	c.fetchedAt = c.now()
	return batch, nil
}
