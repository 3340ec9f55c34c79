package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeStale    = "stale"
	OutcomeEmpty    = "empty"
	OutcomeTierDeny = "tier_denied"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	renders    *prometheus.CounterVec
	gatherer   prometheus.Gatherer
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		summaryVec: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		counterVec: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_renders_total",
				Help: "Résumé renders by template, kind (preview, pdf) and outcome",
			},
			[]string{"template", "kind", "outcome"},
		),
		gatherer: reg,
	}
}

// Middleware records duration and count per route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		code := strconv.Itoa(status)
		m.summaryVec.WithLabelValues(c.Method(), path, code).Observe(duration)
		m.counterVec.WithLabelValues(c.Method(), path, code).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

// ObserveRender counts one render. A nil receiver records nothing.
func (m *Metrics) ObserveRender(template, kind, outcome string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(template, kind, outcome).Inc()
}
