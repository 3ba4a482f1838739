package repositories

import (
	"errors"
	"sync"

	"qris/internal/domain/invoice"
	appErrors "qris/internal/errors"
)

// maxIssueAttempts bounds re-issuance when a freshly drawn id or token
// collides with a stored invoice.
const maxIssueAttempts = 8

var ErrIdentifierSpaceExhausted = errors.New("could not allocate a unique invoice id")

// InvoiceStore is the process-lifetime registry of invoices, keyed by
// transaction number with secondary indexes on id and token. Invoices are
// never removed.
type InvoiceStore struct {
	mu       sync.RWMutex
	issuer   *invoice.Issuer
	byNumber map[string]*invoice.Invoice
	byID     map[string]*invoice.Invoice
	byToken  map[string]*invoice.Invoice
}

func NewInvoiceStore(issuer *invoice.Issuer) *InvoiceStore {
	if issuer == nil {
		panic("issuer is required")
	}
	return &InvoiceStore{
		issuer:   issuer,
		byNumber: make(map[string]*invoice.Invoice),
		byID:     make(map[string]*invoice.Invoice),
		byToken:  make(map[string]*invoice.Invoice),
	}
}

// Reserve issues and registers a new invoice for transactionNumber. The
// uniqueness check and the insert happen under one write lock, so racing
// callers with the same number get exactly one invoice between them.
// Token derivation runs outside the lock.
func (s *InvoiceStore) Reserve(transactionNumber string, amount int64) (*invoice.Invoice, error) {
	if s.Exists(transactionNumber) {
		return nil, appErrors.ErrDuplicateTransaction
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		inv, err := s.issuer.Issue(transactionNumber, amount)
		if err != nil {
			return nil, err
		}

		inserted, err := s.insertIfAbsent(inv)
		if err != nil {
			return nil, err
		}
		if inserted {
			return inv, nil
		}
	}
	return nil, ErrIdentifierSpaceExhausted
}

// insertIfAbsent returns (false, nil) when only the id or token collided,
// asking the caller to re-issue.
func (s *InvoiceStore) insertIfAbsent(inv *invoice.Invoice) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byNumber[inv.TransactionNumber()]; exists {
		return false, appErrors.ErrDuplicateTransaction
	}
	if _, exists := s.byID[inv.ID()]; exists {
		return false, nil
	}
	if _, exists := s.byToken[inv.Token()]; exists {
		return false, nil
	}

	s.byNumber[inv.TransactionNumber()] = inv
	s.byID[inv.ID()] = inv
	s.byToken[inv.Token()] = inv
	return true, nil
}

func (s *InvoiceStore) FindByID(id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.byID[id]
	if !ok {
		return nil, appErrors.ErrInvoiceNotFound
	}
	return inv, nil
}

func (s *InvoiceStore) FindByToken(token string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.byToken[token]
	if !ok {
		return nil, appErrors.ErrInvalidToken
	}
	return inv, nil
}

// Exists reports whether transactionNumber was ever reserved.
func (s *InvoiceStore) Exists(transactionNumber string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byNumber[transactionNumber]
	return ok
}

func (s *InvoiceStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byNumber)
}
