package errors

var (
	ErrMandatoryParameter = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "mandatory parameter is not valid",
		Status:  StatusFailed,
	}
	ErrEmptyTransactionNumber = &DomainError{
		Code:    "EMPTY_TRANSACTION_NUMBER",
		Message: "transaction number is empty",
		Status:  StatusFailed,
	}
	ErrDuplicateTransaction = &DomainError{
		Code:    "DUPLICATE_TRANSACTION",
		Message: "cliTrxNumber already used before ! (what we do for you?)",
		Status:  StatusInvalidRequest,
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
		Status:  StatusInvalidRequest,
	}
	ErrInvoiceNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "invoice not found",
		Status:  StatusFailed,
	}
	ErrDateMismatch = &DomainError{
		Code:    "DATE_MISMATCH",
		Message: "transaction date invalid",
		Status:  StatusFailed,
	}
	ErrAmountMismatch = &DomainError{
		Code:    "AMOUNT_MISMATCH",
		Message: "invalid invoice amount",
		Status:  StatusFailed,
	}
	ErrInvoiceExpired = &DomainError{
		Code:    "INVOICE_EXPIRED",
		Message: "invoice already invalid (timeout)",
		Status:  StatusFailed,
	}
	ErrUnpaid = &DomainError{
		Code:    "UNPAID",
		Message: "unpaid",
		Status:  StatusFailed,
	}
	ErrInvalidToken = &DomainError{
		Code:    "INVALID_TOKEN",
		Message: "payment token not recognized",
		Status:  StatusFailed,
	}
)
