package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	domainInvoice "qris/internal/domain/invoice"
	"qris/internal/repositories"
	"qris/internal/repositories/cache"
	"qris/internal/services/invoice"
	"qris/internal/services/qr"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() invoice.Service {
	issuer := domainInvoice.NewIssuer(domainInvoice.IssuerConfig{MaxTokenIterations: 2}, time.Now)
	return invoice.NewService(repositories.NewInvoiceStore(issuer), issuer, qr.NewEncoder(64), nil, nil, invoice.Config{})
}

func get(t *testing.T, app *fiber.App, target string, header map[string]string) int {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSetupRoutes_APIKeyGuardsMerchantEndpoints(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, Dependencies{InvoiceService: newService(), APIKey: "secret"})

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/api/qris/create?cliTrxNumber=A&cliTrxAmount=15000", nil))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/qris/create?cliTrxNumber=A&cliTrxAmount=15000",
		map[string]string{"X-API-Key": "secret"}))

	// callback and health stay open
	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/mp?t=unknown", nil))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/health", nil))
}

func TestSetupRoutes_CreateRateLimitedInRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(&cache.RedisConfig{Addr: mr.Addr()})
	storage := cache.NewStorage(client, "limiter:")
	t.Cleanup(func() { _ = storage.Close() })

	app := fiber.New()
	SetupRoutes(app, Dependencies{
		InvoiceService: newService(),
		RateLimitMax:   2,
		RateLimitTTL:   time.Minute,
		LimiterStorage: storage,
		Redis:          storage,
	})

	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/qris/create?cliTrxNumber=A&cliTrxAmount=15000", nil))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/api/qris/create?cliTrxNumber=B&cliTrxAmount=15000", nil))
	assert.Equal(t, fiber.StatusTooManyRequests, get(t, app, "/api/qris/create?cliTrxNumber=C&cliTrxAmount=15000", nil))

	// verification is not limited
	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/api/qris/check?mID=1&trxValue=15000&trxDate=2025-01-01", nil))

	assert.NotEmpty(t, mr.Keys())
}
