package validation

import (
	"testing"

	appErrors "qris/internal/errors"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestValidateCreateFields(t *testing.T) {
	tests := []struct {
		name    string
		number  *string
		amount  *string
		want    string
		wantErr error
	}{
		{name: "valid", number: ptr("TX1"), amount: ptr("10000"), want: "TX1"},
		{name: "missing number", number: nil, amount: ptr("10000"), wantErr: appErrors.ErrMandatoryParameter},
		{name: "missing amount", number: ptr("TX1"), amount: nil, wantErr: appErrors.ErrMandatoryParameter},
		{name: "empty number", number: ptr(""), amount: ptr("10000"), wantErr: appErrors.ErrEmptyTransactionNumber},
		{name: "blank number", number: ptr(" "), amount: ptr("10000"), wantErr: appErrors.ErrEmptyTransactionNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCreateFields(tt.number, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount(" 15000 ")
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), amount)

	for _, raw := range []string{"", "abc", "12.5", "1e5"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, appErrors.ErrInvalidAmount, raw)
	}
}

func TestValidateVerifyFields(t *testing.T) {
	assert.NoError(t, ValidateVerifyFields(ptr("123"), ptr("10000"), ptr("2025-01-01")))

	bad := [][]*string{
		{nil, ptr("10000"), ptr("2025-01-01")},
		{ptr(""), ptr("10000"), ptr("2025-01-01")},
		{ptr("123"), ptr(" "), ptr("2025-01-01")},
		{ptr("123"), ptr("0"), ptr("2025-01-01")},
		{ptr("123"), ptr("10000"), nil},
	}
	for _, fields := range bad {
		assert.ErrorIs(t, ValidateVerifyFields(fields...), appErrors.ErrMandatoryParameter)
	}
}
