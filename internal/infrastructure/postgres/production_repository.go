package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

const productionColumns = `id, date, stage, product_id, order_id, meta, produced, unit, notes,
	created_by, created_at, updated_at`

// ProductionRepo filas de producción por estación sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Find busca la fila (date, stage, product, order) y la bloquea hasta el fin de la tx.
func (r *ProductionRepo) Find(ctx context.Context, date time.Time, stage, productID, orderID string) (*entity.ProductionRecord, error) {
	query := `
		SELECT ` + productionColumns + ` FROM production_records
		WHERE date = $1 AND stage = $2 AND product_id = $3 AND order_id = $4
		FOR UPDATE`
	rec, err := scanProduction(r.q.QueryRow(ctx, query, date, stage, productID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find production record: %w", err)
	}
	return rec, nil
}

// GetByID obtiene una fila por ID.
func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	rec, err := scanProduction(r.q.QueryRow(ctx, `SELECT `+productionColumns+` FROM production_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production record: %w", err)
	}
	return rec, nil
}

// Create inserta una fila. La unicidad (date, stage, product, order) viene del índice único.
func (r *ProductionRepo) Create(ctx context.Context, rec *entity.ProductionRecord) error {
	query := `INSERT INTO production_records (` + productionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.Date, rec.Stage, rec.ProductID, rec.OrderID, rec.Meta, rec.Produced, rec.Unit,
		rec.Notes, rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production record: %w", err)
	}
	return nil
}

// Update actualiza meta, produzido, unidad y observación.
func (r *ProductionRepo) Update(ctx context.Context, rec *entity.ProductionRecord) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE production_records SET meta = $2, produced = $3, unit = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		rec.ID, rec.Meta, rec.Produced, rec.Unit, rec.Notes, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update production record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDate filas de una estación en un día.
func (r *ProductionRepo) ListByDate(ctx context.Context, date time.Time, stage string) ([]*entity.ProductionRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productionColumns+` FROM production_records
		WHERE date = $1 AND stage = $2 ORDER BY created_at`, date, stage)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionRecord
	for rows.Next() {
		rec, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// SumProducedForOrder suma lo producido en la estación para el pedido (todas las fechas).
func (r *ProductionRepo) SumProducedForOrder(ctx context.Context, stage, orderID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(produced), 0) FROM production_records
		WHERE stage = $1 AND order_id = $2`, stage, orderID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum produced for order: %w", err)
	}
	return total, nil
}

// Delete elimina una fila.
func (r *ProductionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM production_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduction(row pgx.Row) (*entity.ProductionRecord, error) {
	var rec entity.ProductionRecord
	err := row.Scan(&rec.ID, &rec.Date, &rec.Stage, &rec.ProductID, &rec.OrderID, &rec.Meta, &rec.Produced,
		&rec.Unit, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
