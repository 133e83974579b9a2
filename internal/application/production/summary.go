package production

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

// DailySummary totales del día por estación y de las saídas.
// Las cinco estaciones y las saídas se consultan en paralelo.
func (uc *ProductionUseCase) DailySummary(ctx context.Context, date time.Time) (*dto.DailySummaryDTO, error) {
	out := &dto.DailySummaryDTO{
		Date:   date.Format(dto.DateLayout),
		Stages: make(map[string]dto.StageTotalsDTO, len(production.Stages)),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range production.Stages {
		st := st
		g.Go(func() error {
			recs, err := uc.prodRepo.ListByDate(gctx, date, string(st))
			if err != nil {
				return err
			}
			totals := StageTotals(recs)
			mu.Lock()
			out.Stages[string(st)] = totals
			mu.Unlock()
			return nil
		})
	}
	g.Go(func() error {
		list, err := uc.shipmentRepo.List(gctx, repository.ShipmentFilter{Date: &date})
		if err != nil {
			return err
		}
		out.Shipments = inventory.ShipmentTotals(list)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
