package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// OrderRepo implementa repository.OrderRepository.
type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID] = *o
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[o.ID] = *o
	return nil
}

func (r *OrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if f.DeliveryDate != nil && !sameDay(o.DeliveryDate, *f.DeliveryDate) {
			continue
		}
		if f.ClientID != "" && o.ClientID != f.ClientID {
			continue
		}
		if len(f.Statuses) > 0 && !contains(f.Statuses, o.Status) {
			continue
		}
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeliveryDate.Equal(out[j].DeliveryDate) {
			return out[i].DeliveryDate.Before(out[j].DeliveryDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return page(out, f.Limit, f.Offset), nil
}

func (r *OrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

// ProductionRepo implementa repository.ProductionRepository.
type ProductionRepo struct{ s *Store }

func (r *ProductionRepo) Find(_ context.Context, date time.Time, stage, productID, orderID string) (*entity.ProductionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.production {
		if sameDay(rec.Date, date) && rec.Stage == stage && rec.ProductID == productID && rec.OrderID == orderID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *ProductionRepo) GetByID(_ context.Context, id string) (*entity.ProductionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.production[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *ProductionRepo) Create(_ context.Context, rec *entity.ProductionRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.production {
		if sameDay(other.Date, rec.Date) && other.Stage == rec.Stage &&
			other.ProductID == rec.ProductID && other.OrderID == rec.OrderID {
			return domain.ErrDuplicate
		}
	}
	r.s.production[rec.ID] = *rec
	return nil
}

func (r *ProductionRepo) Update(_ context.Context, rec *entity.ProductionRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.production[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.production[rec.ID] = *rec
	return nil
}

func (r *ProductionRepo) ListByDate(_ context.Context, date time.Time, stage string) ([]*entity.ProductionRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ProductionRecord
	for _, rec := range r.s.production {
		if sameDay(rec.Date, date) && rec.Stage == stage {
			rec := rec
			out = append(out, &rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ProductionRepo) SumProducedForOrder(_ context.Context, stage, orderID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, rec := range r.s.production {
		if rec.Stage == stage && rec.OrderID == orderID {
			sum = sum.Add(rec.Produced)
		}
	}
	return sum, nil
}

func (r *ProductionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.production[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.production, id)
	return nil
}

// StockRepo implementa repository.StockRepository. Lock no hace nada: Store.Run ya
// serializa las transacciones.
type StockRepo struct{ s *Store }

func stockKey(clientID, productID string) string { return clientID + ":" + productID }

func (r *StockRepo) Lock(context.Context, string, string) error { return nil }

func (r *StockRepo) Get(_ context.Context, clientID, productID string) (*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.stock[stockKey(clientID, productID)]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *StockRepo) Save(_ context.Context, st *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[stockKey(st.ClientID, st.ProductID)] = *st
	return nil
}

func (r *StockRepo) List(_ context.Context, clientID string) ([]*entity.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Stock
	for _, st := range r.s.stock {
		if clientID != "" && st.ClientID != clientID {
			continue
		}
		st := st
		out = append(out, &st)
	}
	sort.Slice(out, func(i, j int) bool {
		return stockKey(out[i].ClientID, out[i].ProductID) < stockKey(out[j].ClientID, out[j].ProductID)
	})
	return out, nil
}

func (r *StockRepo) Delete(_ context.Context, clientID, productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := stockKey(clientID, productID)
	if _, ok := r.s.stock[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.stock, key)
	return nil
}

// Count cantidad de filas de estoque, para verificar la unicidad por par en tests.
func (r *StockRepo) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.stock)
}

// ShipmentRepo implementa repository.ShipmentRepository.
type ShipmentRepo struct{ s *Store }

func (r *ShipmentRepo) Create(_ context.Context, sh *entity.Shipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.shipments[sh.ID] = *sh
	return nil
}

func (r *ShipmentRepo) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sh, ok := r.s.shipments[id]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (r *ShipmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shipment, error) {
	return r.GetByID(ctx, id)
}

func (r *ShipmentRepo) Update(_ context.Context, sh *entity.Shipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shipments[sh.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.shipments[sh.ID] = *sh
	return nil
}

func (r *ShipmentRepo) List(_ context.Context, f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Shipment
	for _, sh := range r.s.shipments {
		if f.Date != nil && !sameDay(sh.Date, *f.Date) {
			continue
		}
		if f.ClientID != "" && sh.ClientID != f.ClientID {
			continue
		}
		sh := sh
		out = append(out, &sh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ShipmentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shipments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.shipments, id)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
