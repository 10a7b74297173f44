package main

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mutation outcomes.
const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Metrics bundles the Prometheus collectors of the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Requests        *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
	PersistDuration prometheus.Histogram
	Scenarios       prometheus.Gauge
	Vehicles        prometheus.Gauge
}

// NewMetrics registers the collectors on reg. When reg is also a Gatherer it
// backs the /metrics handler, otherwise the default gatherer does.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{
		gatherer: gatherer,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenario_server_requests_total",
			Help: "Handled HTTP requests, labeled by method, route and status code.",
		}, []string{"method", "route", "code"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scenario_server_mutations_total",
			Help: "Store mutations, labeled by operation and outcome.",
		}, []string{"operation", "outcome"}),
		PersistDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scenario_server_persist_duration_seconds",
			Help:    "Time spent rewriting the backing file.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		Scenarios: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenario_server_scenarios",
			Help: "Current number of scenarios in the collection.",
		}),
		Vehicles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenario_server_vehicles",
			Help: "Current number of vehicles across all scenarios.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Mutations, m.PersistDuration, m.Scenarios, m.Vehicles} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware counts every request once its status is known.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if m == nil {
			return err
		}

		code := statusOf(c, err)
		m.Requests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(code)).Inc()
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

func (m *Metrics) ObserveMutation(operation, outcome string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObservePersist(d time.Duration) {
	if m == nil {
		return
	}
	m.PersistDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveCollection(scenarios, vehicles int) {
	if m == nil {
		return
	}
	m.Scenarios.Set(float64(scenarios))
	m.Vehicles.Set(float64(vehicles))
}
