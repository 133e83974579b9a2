package sheets

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/textnorm"
)

// Encabezados aceptados (normalizados) para cada columna.
var (
	dateHeaders   = []string{"data", "data da venda", "dia"}
	clientHeaders = []string{"cliente", "nome do cliente", "nome"}
	amountHeaders = []string{"valor", "valor total", "total", "valor (r$)"}
)

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02/01/06"}

// ParseRows convierte los valores crudos de la planilla en ventas. La primera fila es el
// encabezado; las columnas se buscan por nombre. Filas mal formadas se descartan y se cuentan.
func ParseRows(values [][]any) (*repository.SalesBatch, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: planilha vazia", domain.ErrSheetUnavailable)
	}
	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = textnorm.Key(cellString(v))
	}
	dateCol := findColumn(header, dateHeaders)
	clientCol := findColumn(header, clientHeaders)
	amountCol := findColumn(header, amountHeaders)
	if dateCol < 0 || clientCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("%w: colunas data/cliente/valor não encontradas", domain.ErrSheetUnavailable)
	}

	batch := &repository.SalesBatch{Sales: make([]entity.Sale, 0, len(values)-1)}
	for _, row := range values[1:] {
		if blankRow(row) {
			continue
		}
		sale, ok := parseRow(row, dateCol, clientCol, amountCol)
		if !ok {
			batch.Skipped++
			continue
		}
		batch.Sales = append(batch.Sales, sale)
	}
	return batch, nil
}

func parseRow(row []any, dateCol, clientCol, amountCol int) (entity.Sale, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(cellString(row[i]))
		}
		return ""
	}
	date, err := ParseDate(cell(dateCol))
	if err != nil {
		return entity.Sale{}, false
	}
	client := cell(clientCol)
	if textnorm.Key(client) == "" {
		return entity.Sale{}, false
	}
	var amount decimal.Decimal
	if f, ok := cellAt(row, amountCol).(float64); ok {
		// celda numérica: el punto ya es decimal
		amount = decimal.NewFromFloat(f)
	} else if amount, err = ParseAmount(cell(amountCol)); err != nil {
		return entity.Sale{}, false
	}
	return entity.Sale{Date: date, Client: client, Amount: amount}, true
}

// ParseDate acepta dd/mm/yyyy, yyyy-mm-dd y dd/mm/yy.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i] // "31/03/2026 14:05"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida %q", s)
}

// thousandsOnly números con punto solo como separador de miles: "2.500", "1.234.567".
var thousandsOnly = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseAmount acepta valores en formato brasileño ("R$ 1.234,56", "-R$ 10,00") o números
// simples ("1234.56"). Sin coma, un punto seguido de grupos de tres dígitos es separador de miles.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, strings.TrimSpace(s[1:])
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if !neg && strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q", s)
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []any, i int) any {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return nil
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return decimal.NewFromFloat(x).String()
	default:
		return fmt.Sprint(x)
	}
}

func blankRow(row []any) bool {
	for _, v := range row {
		if strings.TrimSpace(cellString(v)) != "" {
			return false
		}
	}
	return true
}
