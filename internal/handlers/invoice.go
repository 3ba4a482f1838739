package handlers

import (
	"qris/internal/services/invoice"
	"qris/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	invoiceService invoice.Service
}

func NewInvoiceHandler(invoiceService invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// CreateInvoice issues an invoice for cliTrxNumber / cliTrxAmount and returns
// its QR image.
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	res, err := h.invoiceService.Create(c.UserContext(), invoice.CreateRequest{
		TransactionNumber: param(c, "cliTrxNumber"),
		Amount:            param(c, "cliTrxAmount"),
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, fiber.Map{
		"qris_content":      res.QRContent,
		"qris_request_date": res.RequestDate,
		"qris_invoiceid":    res.InvoiceID,
		"qris_nmid":         res.MerchantID,
	})
}

// CheckInvoice reports whether the invoice identified by mID has been paid.
func (h *InvoiceHandler) CheckInvoice(c *fiber.Ctx) error {
	res, err := h.invoiceService.Verify(c.UserContext(), invoice.VerifyRequest{
		InvoiceID: param(c, "mID"),
		Amount:    param(c, "trxValue"),
		Date:      param(c, "trxDate"),
	})
	if err != nil {
		return fail(c, err)
	}

	return response.SuccessWith(c, fiber.Map{
		"qris_status":               res.Status,
		"qris_payment_customername": res.CustomerName,
		"qris_payment_methodby":     res.PaymentMethod,
	}, fiber.Map{
		"qris_api_version_code": res.APIVersionCode,
	})
}
