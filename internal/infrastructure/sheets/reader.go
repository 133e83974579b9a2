// Package sheets lee la planilla de ventas de Google Sheets que alimenta el dashboard.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Padaria-api/pkg/config"
)

var _ repository.SalesSource = (*SalesReader)(nil)

// fetchTimeout tope de una lectura de la planilla.
const fetchTimeout = 15 * time.Second

// SalesReader lee el rango de ventas con la API de valores de Sheets.
type SalesReader struct {
	svc           *gsheets.Service
	spreadsheetID string
	readRange     string
	metrics       *metrics.Metrics
}

// NewSalesReader crea el cliente de Sheets (solo lectura). Sin CredentialsFile usa las
// credenciales por defecto del entorno (GOOGLE_APPLICATION_CREDENTIALS).
func NewSalesReader(ctx context.Context, cfg config.SheetsConfig, m *metrics.Metrics) (*SalesReader, error) {
	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsReadonlyScope)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear cliente: %w", err)
	}
	return &SalesReader{svc: svc, spreadsheetID: cfg.SpreadsheetID, readRange: cfg.SalesRange, metrics: m}, nil
}

// FetchSales lee y parsea el rango configurado. Cualquier falla se envuelve en ErrSheetUnavailable.
func (r *SalesReader) FetchSales(ctx context.Context) (*repository.SalesBatch, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	start := time.Now()
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	r.metrics.ObserveSheetFetch(time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnavailable, err)
	}
	return ParseRows(resp.Values)
}

// Disabled fuente usada cuando no hay planilla configurada: el dashboard responde 502.
type Disabled struct{}

// FetchSales siempre devuelve ErrSheetUnavailable.
func (Disabled) FetchSales(context.Context) (*repository.SalesBatch, error) {
	return nil, fmt.Errorf("%w: SHEETS_SPREADSHEET_ID no configurado", domain.ErrSheetUnavailable)
}
