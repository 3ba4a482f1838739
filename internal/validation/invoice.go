package validation

import (
	"strconv"
	"strings"

	appErrors "qris/internal/errors"
)

// ValidateCreateFields checks presence of both create parameters and that the
// transaction number is not blank. It returns the transaction number.
func ValidateCreateFields(transactionNumber, amount *string) (string, error) {
	if transactionNumber == nil || amount == nil {
		return "", appErrors.ErrMandatoryParameter
	}
	if strings.TrimSpace(*transactionNumber) == "" {
		return "", appErrors.ErrEmptyTransactionNumber
	}
	return *transactionNumber, nil
}

// ParseAmount reads a base-10 integer amount.
func ParseAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, appErrors.ErrInvalidAmount
	}
	return amount, nil
}

// ValidateVerifyFields rejects any verification field that is missing,
// blank or the literal "0".
func ValidateVerifyFields(fields ...*string) error {
	for _, f := range fields {
		if f == nil {
			return appErrors.ErrMandatoryParameter
		}
		v := strings.TrimSpace(*f)
		if v == "" || v == "0" {
			return appErrors.ErrMandatoryParameter
		}
	}
	return nil
}
