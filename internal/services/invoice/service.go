// Package invoice orchestrates invoice creation, payer verification and the
// payment callback on top of the invoice store.
package invoice

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	domainInvoice "qris/internal/domain/invoice"
	appErrors "qris/internal/errors"
	"qris/internal/logger"
	"qris/internal/models"
	"qris/internal/services/qr"
	"qris/internal/utils"
	"qris/internal/validation"
)

type service struct {
	store       Store
	issuer      *domainInvoice.Issuer
	encoder     qr.Encoder
	audit       AuditRecorder
	log         *logger.Logger
	merchantID  string
	localOffset time.Duration
	terminalQR  bool
}

// NewService creates a new invoice service. The merchant id (NMID) is drawn
// once here and reported on every creation.
func NewService(store Store, issuer *domainInvoice.Issuer, encoder qr.Encoder,
	audit AuditRecorder, log *logger.Logger, cfg Config) Service {
	if store == nil {
		panic("store is required")
	}
	if issuer == nil {
		panic("issuer is required")
	}
	if encoder == nil {
		panic("encoder is required")
	}
	if audit == nil {
		audit = NoopAuditRecorder{}
	}
	if log == nil {
		log = logger.Discard()
	}

	return &service{
		store:       store,
		issuer:      issuer,
		encoder:     encoder,
		audit:       audit,
		log:         log,
		merchantID:  utils.GenerateMerchantID(),
		localOffset: cfg.LocalOffset,
		terminalQR:  cfg.TerminalQR,
	}
}

func (s *service) MerchantID() string { return s.merchantID }

func (s *service) InvoiceCount() int { return s.store.Count() }

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	number, err := validation.ValidateCreateFields(req.TransactionNumber, req.Amount)
	if err != nil {
		return nil, s.reject("CREATE", err)
	}

	if s.store.Exists(number) {
		return nil, s.reject("CREATE", appErrors.ErrDuplicateTransaction)
	}

	amount, err := validation.ParseAmount(*req.Amount)
	if err != nil {
		return nil, s.reject("CREATE", err)
	}
	if err := s.issuer.ValidateAmount(amount); err != nil {
		return nil, s.reject("CREATE", err)
	}

	inv, err := s.store.Reserve(number, amount)
	if err != nil {
		return nil, s.reject("CREATE", err)
	}

	png, err := s.encoder.EncodePNG(inv.QRReference())
	if err != nil {
		s.log.Error("QR", fmt.Sprintf("invoice %s: %v", inv.ID(), err))
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.ID(), err)
	}
	if s.terminalQR {
		if text, err := s.encoder.EncodeTerminal(inv.QRReference()); err == nil {
			s.log.Debug("QR", "\n"+text)
		}
	}

	s.log.LogInvoice("CREATE", inv.ID(), fmt.Sprintf("trx=%s amount=%d expires=%s",
		number, amount, inv.ExpiredDate().UTC().Format(time.RFC3339)))
	s.record(ctx, models.EventInvoiceCreated, inv)

	return &CreateResult{
		InvoiceID:   inv.ID(),
		QRContent:   base64.StdEncoding.EncodeToString(png),
		QRReference: inv.QRReference(),
		RequestDate: s.localTime(inv.RequestDate()).Format(requestDateLayout),
		ExpiredDate: inv.ExpiredDate(),
		MerchantID:  s.merchantID,
	}, nil
}

func (s *service) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	if err := validation.ValidateVerifyFields(req.InvoiceID, req.Amount, req.Date); err != nil {
		return nil, s.reject("VERIFY", err)
	}

	inv, err := s.store.FindByID(*req.InvoiceID)
	if err != nil {
		return nil, s.reject("VERIFY", err)
	}

	if s.localTime(inv.RequestDate()).Format(dateLayout) != *req.Date {
		return nil, s.reject("VERIFY", appErrors.ErrDateMismatch)
	}

	amount, err := validation.ParseAmount(*req.Amount)
	if err != nil || amount != inv.Amount() {
		return nil, s.reject("VERIFY", appErrors.ErrAmountMismatch)
	}

	if !inv.IsValid(s.issuer.Now()) {
		return nil, s.reject("VERIFY", appErrors.ErrInvoiceExpired)
	}

	snap := inv.Snapshot()
	if !snap.IsPaid {
		return nil, s.reject("VERIFY", appErrors.ErrUnpaid)
	}

	return &VerifyResult{
		Status:         StatusPaid,
		CustomerName:   snap.CustomerName,
		PaymentMethod:  snap.PaymentMethod,
		APIVersionCode: utils.RandomDigits(versionCodeUpper),
	}, nil
}

func (s *service) Pay(ctx context.Context, req PayRequest) (*PayResult, error) {
	if strings.TrimSpace(req.Token) == "" {
		return nil, s.reject("PAY", appErrors.ErrMandatoryParameter)
	}

	inv, err := s.store.FindByToken(req.Token)
	if err != nil {
		return nil, s.reject("PAY", err)
	}

	if !inv.Pay(s.issuer.Now(), req.CustomerName, req.PaymentMethod) {
		return nil, s.reject("PAY", appErrors.ErrInvoiceExpired)
	}

	snap := inv.Snapshot()
	s.log.LogInvoice("PAY", snap.ID, fmt.Sprintf("paid by %s via %s", snap.CustomerName, snap.PaymentMethod))
	s.record(ctx, models.EventInvoicePaid, inv)

	return &PayResult{
		InvoiceID:     snap.ID,
		Status:        StatusPaid,
		CustomerName:  snap.CustomerName,
		PaymentMethod: snap.PaymentMethod,
	}, nil
}

func (s *service) localTime(t time.Time) time.Time {
	return t.UTC().Add(s.localOffset)
}

func (s *service) reject(operation string, err error) error {
	s.log.LogRejection(operation, err.Error())
	return err
}

func (s *service) record(ctx context.Context, eventType string, inv *domainInvoice.Invoice) {
	event := models.NewInvoiceEvent(eventType, inv.Snapshot(), s.issuer.Now())
	if err := s.audit.Record(ctx, event); err != nil {
		s.log.Warn("AUDIT", err.Error())
	}
}
