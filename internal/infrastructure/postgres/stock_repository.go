package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `client_id, product_id, boxes, packages, units, kg, updated_at, inventory_updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La tabla no tiene constraint único por par: Lock + Get + Save dentro de una tx lo garantizan.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Lock toma pg_advisory_xact_lock sobre el par; se libera con el Commit/Rollback.
// Fuera de una tx el lock dura solo la sentencia.
func (r *StockRepo) Lock(ctx context.Context, clientID, productID string) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`, clientID, productID)
	if err != nil {
		return fmt.Errorf("lock stock: %w", err)
	}
	return nil
}

// Get obtiene el stock del par. nil, nil si no hay fila.
func (r *StockRepo) Get(ctx context.Context, clientID, productID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE client_id = $1 AND product_id = $2 LIMIT 1`
	s, err := scanStock(r.q.QueryRow(ctx, query, clientID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// Save actualiza la fila del par o la inserta si no existe.
func (r *StockRepo) Save(ctx context.Context, s *entity.Stock) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock SET boxes = $3, packages = $4, units = $5, kg = $6, updated_at = $7, inventory_updated_at = $8
		WHERE client_id = $1 AND product_id = $2`,
		s.ClientID, s.ProductID, s.Quantity.Boxes, s.Quantity.Packages, s.Quantity.Units, s.Quantity.Kg,
		s.UpdatedAt, s.InventoryUpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	_, err = r.q.Exec(ctx, `INSERT INTO stock (`+stockColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ClientID, s.ProductID, s.Quantity.Boxes, s.Quantity.Packages, s.Quantity.Units, s.Quantity.Kg,
		s.UpdatedAt, s.InventoryUpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// List lista el stock; clientID vacío = todos.
func (r *StockRepo) List(ctx context.Context, clientID string) ([]*entity.Stock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+stockColumns+` FROM stock
		WHERE ($1 = '' OR client_id::text = $1)
		ORDER BY client_id, product_id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina la fila del par.
func (r *StockRepo) Delete(ctx context.Context, clientID, productID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE client_id = $1 AND product_id = $2`, clientID, productID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ClientID, &s.ProductID,
		&s.Quantity.Boxes, &s.Quantity.Packages, &s.Quantity.Units, &s.Quantity.Kg,
		&s.UpdatedAt, &s.InventoryUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
