package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDigits_InRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n, err := strconv.ParseInt(RandomDigits(1000), 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(1000))
	}
}

func TestGenerateMerchantID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateMerchantID()
		require.True(t, strings.HasPrefix(id, "ID"))

		n, err := strconv.ParseInt(strings.TrimPrefix(id, "ID"), 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(1_000_000_000_001))
		assert.LessOrEqual(t, n, int64(9_999_999_999_999))
	}
}

func TestSecureIntn(t *testing.T) {
	v, err := SecureIntn(5)
	require.NoError(t, err)
	assert.Less(t, v, int64(5))
}

func TestPick(t *testing.T) {
	choices := []string{"a", "b"}
	assert.Contains(t, choices, Pick(choices))
}
