// Package invoice models a QRIS payment invoice and its lifecycle:
// issuance, lazy expiry, single payment and validity.
package invoice

import (
	"strings"
	"sync"
	"time"
)

// Invoice is a mutable payment request. Identity, amount and dates are fixed
// at issuance; only the payment fields change, and only through Pay.
type Invoice struct {
	mu sync.RWMutex

	id                string
	transactionNumber string
	amount            int64
	token             string
	qrReference       string
	requestDate       time.Time
	expiredDate       time.Time

	paid          bool
	customerName  string
	paymentMethod string
}

// Details is a point-in-time copy of an invoice, safe to hand to other goroutines.
type Details struct {
	ID                string    `json:"id"`
	TransactionNumber string    `json:"transaction_number"`
	Amount            int64     `json:"amount"`
	QRReference       string    `json:"qr_reference"`
	RequestDate       time.Time `json:"request_date"`
	ExpiredDate       time.Time `json:"expired_date"`
	IsPaid            bool      `json:"is_paid"`
	CustomerName      string    `json:"customer_name,omitempty"`
	PaymentMethod     string    `json:"payment_method,omitempty"`
}

func (i *Invoice) ID() string                { return i.id }
func (i *Invoice) TransactionNumber() string { return i.transactionNumber }
func (i *Invoice) Amount() int64             { return i.amount }
func (i *Invoice) Token() string             { return i.token }
func (i *Invoice) QRReference() string       { return i.qrReference }
func (i *Invoice) RequestDate() time.Time    { return i.requestDate }
func (i *Invoice) ExpiredDate() time.Time    { return i.expiredDate }

func (i *Invoice) IsPaid() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.paid
}

func (i *Invoice) CustomerName() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.customerName
}

func (i *Invoice) PaymentMethod() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.paymentMethod
}

// IsExpired reports whether now is strictly past the expiry date.
func (i *Invoice) IsExpired(now time.Time) bool {
	return now.After(i.expiredDate)
}

// IsValid is true for any paid invoice, and for unpaid ones until they expire.
func (i *Invoice) IsValid(now time.Time) bool {
	if i.IsPaid() {
		return true
	}
	return !i.IsExpired(now)
}

// Pay settles the invoice. It returns false, leaving the invoice untouched,
// once the invoice has expired. An empty customerName or a blank
// paymentMethod is replaced by a random placeholder.
//
// Paying an already paid invoice succeeds again and overwrites the payer fields.
func (i *Invoice) Pay(now time.Time, customerName, paymentMethod string) bool {
	if i.IsExpired(now) {
		return false
	}

	if customerName == "" {
		customerName = RandomCustomerName()
	}
	if strings.TrimSpace(paymentMethod) == "" {
		paymentMethod = RandomPaymentMethod()
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.paid = true
	i.customerName = customerName
	i.paymentMethod = paymentMethod
	return true
}

// Snapshot copies the invoice state.
func (i *Invoice) Snapshot() Details {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return Details{
		ID:                i.id,
		TransactionNumber: i.transactionNumber,
		Amount:            i.amount,
		QRReference:       i.qrReference,
		RequestDate:       i.requestDate,
		ExpiredDate:       i.expiredDate,
		IsPaid:            i.paid,
		CustomerName:      i.customerName,
		PaymentMethod:     i.paymentMethod,
	}
}
