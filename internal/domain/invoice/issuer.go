package invoice

import (
	"fmt"
	"strings"
	"time"

	appErrors "qris/internal/errors"
	"qris/internal/utils"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultMinAmount     = 10_000
	DefaultMaxAmount     = 2_000_000
	DefaultMaxIterations = 10_000

	// ids are drawn from [0, idUpper).
	idUpper = 999_999_999
)

// IssuerConfig bounds what an Issuer will create.
type IssuerConfig struct {
	MinAmount          int64
	MaxAmount          int64
	TTL                time.Duration
	MaxTokenIterations int
	CallbackHost       string
	CallbackPort       string
}

// Issuer constructs new invoices. It does not register them anywhere.
type Issuer struct {
	cfg IssuerConfig
	now func() time.Time
}

// NewIssuer returns an Issuer. Zero config values fall back to the defaults
// and a nil clock means time.Now.
func NewIssuer(cfg IssuerConfig, now func() time.Time) *Issuer {
	if cfg.MinAmount == 0 {
		cfg.MinAmount = DefaultMinAmount
	}
	if cfg.MaxAmount == 0 {
		cfg.MaxAmount = DefaultMaxAmount
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxTokenIterations == 0 {
		cfg.MaxTokenIterations = DefaultMaxIterations
	}
	if now == nil {
		now = time.Now
	}
	return &Issuer{cfg: cfg, now: now}
}

// Now is the issuer's clock, shared with expiry checks.
func (is *Issuer) Now() time.Time {
	return is.now()
}

// ValidateAmount enforces the inclusive [MinAmount, MaxAmount] range.
func (is *Issuer) ValidateAmount(amount int64) error {
	if amount < is.cfg.MinAmount || amount > is.cfg.MaxAmount {
		return appErrors.ErrInvalidAmount
	}
	return nil
}

// Issue builds a fresh unpaid invoice for transactionNumber.
func (is *Issuer) Issue(transactionNumber string, amount int64) (*Invoice, error) {
	if strings.TrimSpace(transactionNumber) == "" {
		return nil, appErrors.ErrEmptyTransactionNumber
	}
	if err := is.ValidateAmount(amount); err != nil {
		return nil, err
	}

	id := utils.RandomDigits(idUpper)
	requested := is.now()
	expires := requested.Add(is.cfg.TTL)

	token, err := DeriveToken(id, transactionNumber, requested, expires, is.cfg.MaxTokenIterations)
	if err != nil {
		return nil, fmt.Errorf("failed to derive invoice token: %w", err)
	}

	return &Invoice{
		id:                id,
		transactionNumber: transactionNumber,
		amount:            amount,
		token:             token,
		qrReference:       CallbackURL(is.cfg.CallbackHost, is.cfg.CallbackPort, token),
		requestDate:       requested,
		expiredDate:       expires,
	}, nil
}

// CallbackURL is the payload rendered into the QR image.
func CallbackURL(host, port, token string) string {
	return fmt.Sprintf("http://%s:%s/mp?t=%s", host, port, token)
}
