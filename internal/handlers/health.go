package handlers

import (
	"context"
	"time"

	"qris/internal/services/invoice"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by the redis storage adapter.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	invoiceService invoice.Service
	redis          Pinger
}

// NewHealthHandler accepts a nil redis when it is not configured.
func NewHealthHandler(invoiceService invoice.Service, redis Pinger) *HealthHandler {
	return &HealthHandler{
		invoiceService: invoiceService,
		redis:          redis,
	}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	services := fiber.Map{}
	status := "ok"

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.redis.HealthCheck(ctx); err != nil {
			services["redis"] = "disconnected"
			status = "degraded"
		} else {
			services["redis"] = "connected"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"invoices": h.invoiceService.InvoiceCount(),
		"services": services,
	})
}
