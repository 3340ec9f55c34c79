package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRoutes(t *testing.T) {
	m := New(prometheus.NewRegistry())
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/resumes/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "no") })
	app.Get("/metrics", m.Handler())

	for _, path := range []string{"/resumes/1", "/resumes/2", "/boom"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.counterVec.WithLabelValues("GET", "/resumes/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterVec.WithLabelValues("GET", "/boom", "418")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestObserveRender(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveRender("classic", "preview", OutcomeOK)
	m.ObserveRender("classic", "preview", OutcomeOK)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.renders.WithLabelValues("classic", "preview", OutcomeOK)))

	var none *Metrics
	assert.NotPanics(t, func() { none.ObserveRender("classic", "pdf", OutcomeFailed) })
}
