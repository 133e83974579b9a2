package dto

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/jhoicas/Padaria-api/internal/domain"
)

// DateLayout formato de fechas en query strings y bodies ("2026-03-31").
const DateLayout = "2006-01-02"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OptionDTO opción de un select del frontend.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParseDate interpreta una fecha "YYYY-MM-DD". Vacío devuelve def.
func ParseDate(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

var location atomic.Pointer[time.Location]

// SetLocation fija la zona horaria de la padaria con la que Today decide qué día es.
// Se llama al arrancar; sin llamarla Today usa UTC.
func SetLocation(loc *time.Location) {
	location.Store(loc)
}

// Today fecha de hoy en la zona de la padaria, como fecha UTC sin hora.
func Today() time.Time {
	return TodayAt(time.Now())
}

// TodayAt fecha de now en la zona de la padaria, como fecha UTC sin hora.
func TodayAt(now time.Time) time.Time {
	loc := location.Load()
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
