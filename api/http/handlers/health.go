package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudblitz/learnhub/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	service string
	svc     health.ReadinessUseCase
}

// NewHealthHandler builds a handler for the named service. svc may be
// nil when the service has no external dependencies to check.
func NewHealthHandler(service string, svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{service: service, svc: svc}
}

// Health is a basic liveness check.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": h.service,
	})
}

// Ready checks dependencies (DB ping) before reporting ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.svc != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 1*time.Second)
		defer cancel()
		if err := h.svc.Ready(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "not_ready",
				"details": err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
