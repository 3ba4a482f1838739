// Package routes wires the invoice API onto a fiber app.
package routes

import (
	"time"

	"qris/internal/handlers"
	"qris/internal/logger"
	"qris/internal/middleware"
	"qris/internal/services/invoice"
	"qris/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Dependencies groups what the routes need. LimiterStorage and Redis are nil
// when redis is not configured; the limiter then keeps counters in memory.
type Dependencies struct {
	InvoiceService invoice.Service
	Logger         *logger.Logger
	APIKey         string
	RateLimitMax   int
	RateLimitTTL   time.Duration
	LimiterStorage fiber.Storage
	Redis          handlers.Pinger
}

// SetupRoutes configures middleware and all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.APIKeyHeader,
		AllowMethods: "GET,POST,HEAD",
	}))

	invoiceHandler := handlers.NewInvoiceHandler(deps.InvoiceService)
	paymentHandler := handlers.NewPaymentHandler(deps.InvoiceService)
	healthHandler := handlers.NewHealthHandler(deps.InvoiceService, deps.Redis)

	app.Get("/health", healthHandler.HealthCheck)

	// payers reach this through the QR code, so it stays outside the API key
	app.Get("/mp", paymentHandler.Pay)

	apiKey := middleware.NewAPIKeyMiddleware(deps.APIKey, deps.Logger)
	qris := app.Group("/api/qris", apiKey.Handler)

	createLimiter := newCreateLimiter(deps)
	qris.Get("/create", createLimiter, invoiceHandler.CreateInvoice)
	qris.Post("/create", createLimiter, invoiceHandler.CreateInvoice)
	qris.Get("/check", invoiceHandler.CheckInvoice)
}

func newCreateLimiter(deps Dependencies) fiber.Handler {
	maxRequests := deps.RateLimitMax
	if maxRequests <= 0 {
		maxRequests = 60
	}
	expiration := deps.RateLimitTTL
	if expiration <= 0 {
		expiration = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: expiration,
		Storage:    deps.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Failure(c, fiber.StatusTooManyRequests, "failed", "too many requests, please try again later")
		},
	})
}
