// Package errors holds the domain error taxonomy shared by the invoice
// lifecycle and the HTTP layer.
package errors

import stderrors "errors"

// Response statuses carried in the JSON envelope.
const (
	StatusFailed         = "failed"
	StatusInvalidRequest = "invalid_request"
)

// DomainError is a reported (never fatal) rejection. Code identifies the
// failure kind, Message is what the caller sees in qris_status and Status is
// the envelope status.
type DomainError struct {
	Code    string
	Message string
	Status  string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}
