package handlers

import (
	"qris/internal/services/invoice"
	"qris/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type PaymentHandler struct {
	invoiceService invoice.Service
}

func NewPaymentHandler(invoiceService invoice.Service) *PaymentHandler {
	return &PaymentHandler{
		invoiceService: invoiceService,
	}
}

// Pay is the callback the QR code points at.
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	res, err := h.invoiceService.Pay(c.UserContext(), invoice.PayRequest{
		Token:         utils.CopyString(c.Query("t")),
		CustomerName:  utils.CopyString(c.Query("customerName")),
		PaymentMethod: utils.CopyString(c.Query("paymentMethod")),
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, fiber.Map{
		"qris_status":               res.Status,
		"qris_invoiceid":            res.InvoiceID,
		"qris_payment_customername": res.CustomerName,
		"qris_payment_methodby":     res.PaymentMethod,
	})
}
