// Package middleware provides HTTP middleware for the invoice API.
package middleware

import (
	"crypto/subtle"

	"qris/internal/logger"
	"qris/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards merchant endpoints with a static key.
type APIKeyMiddleware struct {
	key string
	log *logger.Logger
}

func NewAPIKeyMiddleware(key string, log *logger.Logger) *APIKeyMiddleware {
	if log == nil {
		log = logger.Discard()
	}
	return &APIKeyMiddleware{key: key, log: log}
}

// Handler accepts the key from the X-API-Key header or the apiKey query
// parameter. An empty configured key lets every request through.
func (m *APIKeyMiddleware) Handler(c *fiber.Ctx) error {
	if m.key == "" {
		return c.Next()
	}

	supplied := c.Get(APIKeyHeader)
	if supplied == "" {
		supplied = c.Query("apiKey")
	}

	if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.key)) != 1 {
		m.log.Warn("AUTH", "rejected request from "+c.IP()+" to "+c.Path())
		return response.Unauthorized(c)
	}
	return c.Next()
}
