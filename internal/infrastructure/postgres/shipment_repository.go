package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentColumns = `id, date, client_id, product_id,
	meta_boxes, meta_packages, meta_units, meta_kg,
	delivered_boxes, delivered_packages, delivered_units, delivered_kg,
	notes, created_by, created_at, updated_at`

// ShipmentRepo saídas sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste una saída.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	query := `INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Date, s.ClientID, s.ProductID,
		s.Meta.Boxes, s.Meta.Packages, s.Meta.Units, s.Meta.Kg,
		s.Delivered.Boxes, s.Delivered.Packages, s.Delivered.Units, s.Delivered.Kg,
		s.Notes, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene una saída. nil, nil si no existe.
func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	return r.get(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id)
}

// GetForUpdate obtiene la saída y bloquea la fila (SELECT FOR UPDATE).
func (r *ShipmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shipment, error) {
	return r.get(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1 FOR UPDATE`, id)
}

func (r *ShipmentRepo) get(ctx context.Context, query, id string) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// Update actualiza todos los campos editables de la saída.
func (r *ShipmentRepo) Update(ctx context.Context, s *entity.Shipment) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE shipments SET date = $2, client_id = $3, product_id = $4,
			meta_boxes = $5, meta_packages = $6, meta_units = $7, meta_kg = $8,
			delivered_boxes = $9, delivered_packages = $10, delivered_units = $11, delivered_kg = $12,
			notes = $13, updated_at = $14
		WHERE id = $1`,
		s.ID, s.Date, s.ClientID, s.ProductID,
		s.Meta.Boxes, s.Meta.Packages, s.Meta.Units, s.Meta.Kg,
		s.Delivered.Boxes, s.Delivered.Packages, s.Delivered.Units, s.Delivered.Kg,
		s.Notes, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista saídas por fecha y/o cliente.
func (r *ShipmentRepo) List(ctx context.Context, f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	var (
		where []string
		args  []any
	)
	if f.Date != nil {
		args = append(args, *f.Date)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}
	if f.ClientID != "" {
		args = append(args, f.ClientID)
		where = append(where, fmt.Sprintf("client_id = $%d", len(args)))
	}
	query := `SELECT ` + shipmentColumns + ` FROM shipments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date, created_at"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina una saída.
func (r *ShipmentRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(&s.ID, &s.Date, &s.ClientID, &s.ProductID,
		&s.Meta.Boxes, &s.Meta.Packages, &s.Meta.Units, &s.Meta.Kg,
		&s.Delivered.Boxes, &s.Delivered.Packages, &s.Delivered.Units, &s.Delivered.Kg,
		&s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
