package invoice

import (
	"crypto/sha512"
	"encoding/hex"
	"time"

	"qris/internal/utils"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize    = 1024
	tokenKeyLen = 32

	isoLayout = "2006-01-02T15:04:05.000Z"
)

// DeriveToken runs PBKDF2-SHA512 over the invoice identity and both
// timestamps with a fresh salt and a random iteration count in
// [1, maxIterations]. The result is 64 hex characters.
func DeriveToken(id, transactionNumber string, requested, expires time.Time, maxIterations int) (string, error) {
	if maxIterations < 1 {
		maxIterations = 1
	}

	salt, err := utils.RandomBytes(saltSize)
	if err != nil {
		return "", err
	}
	n, err := utils.SecureIntn(int64(maxIterations))
	if err != nil {
		return "", err
	}

	password := id + transactionNumber + isoTimestamp(requested) + isoTimestamp(expires)
	key := pbkdf2.Key([]byte(password), salt, int(n)+1, tokenKeyLen, sha512.New)
	return hex.EncodeToString(key), nil
}

func isoTimestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
