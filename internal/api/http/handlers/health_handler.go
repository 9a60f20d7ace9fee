package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/internal/observability"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *ledger.Store
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, store *ledger.Store, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: store, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The ledger is in-process so readiness
// reduces to reporting its population.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	stats := h.store.Stats()
	return c.JSON(fiber.Map{
		"status": "ready",
		"ledger": fiber.Map{
			"workshops":     stats.Workshops,
			"registrations": stats.Registrations,
			"users":         stats.Users,
		},
	})
}

// Metrics dumps in-memory request and error counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
