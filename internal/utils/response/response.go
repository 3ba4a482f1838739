// Package response writes the QRIS JSON envelopes.
package response

import (
	"github.com/gofiber/fiber/v2"
)

const StatusSuccess = "success"

func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"status": StatusSuccess,
		"data":   data,
	})
}

// SuccessWith adds top-level fields next to status and data.
func SuccessWith(c *fiber.Ctx, data interface{}, extra fiber.Map) error {
	body := fiber.Map{
		"status": StatusSuccess,
		"data":   data,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(body)
}

// Failure reports a rejection reason under data.qris_status.
func Failure(c *fiber.Ctx, httpStatus int, status, reason string) error {
	return c.Status(httpStatus).JSON(fiber.Map{
		"status": status,
		"data": fiber.Map{
			"qris_status": reason,
		},
	})
}

func ServerError(c *fiber.Ctx, reason string) error {
	return Failure(c, fiber.StatusInternalServerError, "failed", reason)
}

func Unauthorized(c *fiber.Ctx) error {
	return Failure(c, fiber.StatusUnauthorized, "failed", "unauthorized")
}
