// Package metrics registra los collectors de Prometheus de la API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics collectors de la API. Los métodos aceptan receptor nil (tests sin métricas).
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	productionSub *prometheus.CounterVec
	shipmentOps   *prometheus.CounterVec
	stockOps      *prometheus.CounterVec
	sheetFetch    *prometheus.HistogramVec
}

// New crea y registra los collectors en un registry propio (más los de Go y proceso).
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de los requests HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		productionSub: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "production_submissions_total",
			Help:      "Registros de produção por estação.",
		}, []string{"estagio"}),
		shipmentOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipment_operations_total",
			Help:      "Saídas criadas, editadas e removidas.",
		}, []string{"op"}),
		stockOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_operations_total",
			Help:      "Ajustes, inventários e embalagens que mudam o estoque.",
		}, []string{"op"}),
		sheetFetch: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sheet_fetch_duration_seconds",
			Help:      "Duração da leitura da planilha de vendas.",
			Buckets:   []float64{.1, .25, .5, 1, 2, 5, 10},
		}, []string{"result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.productionSub, m.shipmentOps, m.stockOps, m.sheetFetch,
	)
	return m
}

// Registry devuelve el registry para exponerlo en /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP registra un request terminado.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ProductionSubmitted cuenta un registro de produção.
func (m *Metrics) ProductionSubmitted(stage string) {
	if m == nil {
		return
	}
	m.productionSub.WithLabelValues(stage).Inc()
}

// ShipmentOp cuenta una operación de saída (create, update, delete).
func (m *Metrics) ShipmentOp(op string) {
	if m == nil {
		return
	}
	m.shipmentOps.WithLabelValues(op).Inc()
}

// StockOp cuenta una operación que cambia el estoque (ajuste, inventario, embalagem, delete).
func (m *Metrics) StockOp(op string) {
	if m == nil {
		return
	}
	m.stockOps.WithLabelValues(op).Inc()
}

// ObserveSheetFetch registra la duración de una lectura de la planilla.
func (m *Metrics) ObserveSheetFetch(d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sheetFetch.WithLabelValues(result).Observe(d.Seconds())
}
