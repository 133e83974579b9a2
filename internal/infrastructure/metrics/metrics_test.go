package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Contadores(t *testing.T) {
	m := New("padaria")

	m.ProductionSubmitted("forno")
	m.ProductionSubmitted("forno")
	m.ShipmentOp("create")
	m.StockOp("ajuste")
	m.ObserveSheetFetch(150*time.Millisecond, errors.New("timeout"))
	m.ObserveHTTP("GET", "/api/painel/:estagio", 200, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.productionSub.WithLabelValues("forno")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shipmentOps.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stockOps.WithLabelValues("ajuste")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/painel/:estagio", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.sheetFetch))
}

func TestMetrics_ReceptorNil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ProductionSubmitted("massa")
		m.ShipmentOp("delete")
		m.StockOp("inventario")
		m.ObserveSheetFetch(time.Second, nil)
		m.ObserveHTTP("POST", "/api/submit/:estagio", 201, time.Millisecond)
	})
}
