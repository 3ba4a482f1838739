package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strconv"
)

// RandomBytes returns n bytes from the system CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// SecureIntn returns a uniform value in [0, n) from the system CSPRNG.
func SecureIntn(n int64) (int64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random int: %w", err)
	}
	return v.Int64(), nil
}

// RandomDigits formats a uniform value in [0, upper) as a decimal string.
// Not for secrets.
func RandomDigits(upper int64) string {
	return strconv.FormatInt(mrand.Int64N(upper), 10)
}

// GenerateMerchantID returns an NMID of the form "ID" + 13 digits.
func GenerateMerchantID() string {
	return fmt.Sprintf("ID%d", 1_000_000_000_001+mrand.Int64N(8_999_999_999_999))
}

// Pick returns a uniformly random element of choices.
func Pick(choices []string) string {
	return choices[mrand.IntN(len(choices))]
}
