package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveToken_FreshSaltEachCall(t *testing.T) {
	requested := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	expires := requested.Add(DefaultTTL)

	a, err := DeriveToken("123", "TX1", requested, expires, 4)
	require.NoError(t, err)
	b, err := DeriveToken("123", "TX1", requested, expires, 4)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestDeriveToken_NonPositiveIterations(t *testing.T) {
	token, err := DeriveToken("1", "TX", time.Now(), time.Now(), 0)
	require.NoError(t, err)
	assert.Len(t, token, 64)
}

func TestIsoTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 7, 8, 9, 10, 123_000_000, time.FixedZone("WIB", 7*3600))
	assert.Equal(t, "2025-06-07T01:09:10.123Z", isoTimestamp(ts))
}
