package handlers

import (
	"errors"

	appErrors "qris/internal/errors"
	"qris/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// param returns nil when key is absent from both the query string and a
// form-encoded body.
func param(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		args = c.Context().PostArgs()
		if !args.Has(key) {
			return nil
		}
	}
	v := string(args.Peek(key))
	return &v
}

// fail writes a domain rejection, or a 500 for anything else.
func fail(c *fiber.Ctx, err error) error {
	de, ok := appErrors.AsDomainError(err)
	if !ok {
		return response.ServerError(c, "internal server error")
	}

	status := fiber.StatusBadRequest
	if errors.Is(err, appErrors.ErrInvoiceNotFound) || errors.Is(err, appErrors.ErrInvalidToken) {
		status = fiber.StatusNotFound
	}
	return response.Failure(c, status, de.Status, de.Message)
}
