package basen_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyrec/basen"
)

// TestDecode_RoundTrip checks decode(encode(v, b), b) == v for every base in
// [2,36] over a spread of magnitudes, including values far beyond 64 bits.
func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(35),
		big.NewInt(36),
		big.NewInt(123456789),
		new(big.Int).Exp(big.NewInt(2), big.NewInt(200), nil), // 2^200, well past uint64
		new(big.Int).Exp(big.NewInt(10), big.NewInt(50), nil), // 10^50
	}

	for base := basen.MinBase; base <= basen.MaxBase; base++ {
		for _, v := range values {
			name := fmt.Sprintf("base=%d/v=%s", base, v)
			t.Run(name, func(t *testing.T) {
				s, err := basen.Encode(v, base)
				require.NoError(t, err, "Encode fixture must succeed")

				got, err := basen.Decode(s, base)
				require.NoError(t, err, "Decode(%q, %d)", s, base)
				assert.Zero(t, got.Cmp(v), "round-trip mismatch: got %s want %s", got, v)
			})
		}
	}
}

// TestDecode_Sign verifies that a leading '-' flips the sign and nothing else.
func TestDecode_Sign(t *testing.T) {
	t.Parallel()

	pos, err := basen.Decode("1a", 16)
	require.NoError(t, err)
	neg, err := basen.Decode("-1a", 16)
	require.NoError(t, err)

	assert.Equal(t, int64(26), pos.Int64())
	assert.Equal(t, int64(-26), neg.Int64())
	assert.Zero(t, neg.Cmp(new(big.Int).Neg(pos)), "decode(-s) must equal -decode(s)")
}

// TestDecode_Whitespace verifies surrounding whitespace is trimmed, sign included.
func TestDecode_Whitespace(t *testing.T) {
	t.Parallel()

	got, err := basen.Decode("  111\t", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Int64())

	got, err = basen.Decode(" -111 ", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), got.Int64())
}

// TestDecode_CaseInsensitive verifies 'A'..'Z' carry the same values as 'a'..'z'.
func TestDecode_CaseInsensitive(t *testing.T) {
	t.Parallel()

	lower, err := basen.Decode("ff", 16)
	require.NoError(t, err)
	upper, err := basen.Decode("FF", 16)
	require.NoError(t, err)

	assert.Equal(t, int64(255), lower.Int64())
	assert.Zero(t, lower.Cmp(upper), "case must not change the decoded value")
}

// TestDecode_InvalidBase covers radixes outside [2,36].
func TestDecode_InvalidBase(t *testing.T) {
	t.Parallel()

	for _, base := range []int{-1, 0, 1, 37, 100} {
		_, err := basen.Decode("10", base)
		assert.ErrorIs(t, err, basen.ErrInvalidBase, "base %d must be rejected", base)
	}
}

// TestDecode_InvalidDigitChar covers runes outside [0-9a-zA-Z].
func TestDecode_InvalidDigitChar(t *testing.T) {
	t.Parallel()

	for _, digits := range []string{"12#4", "1 2", "٣", "1.5"} {
		_, err := basen.Decode(digits, 10)
		assert.ErrorIs(t, err, basen.ErrInvalidDigitChar, "digits %q must be rejected", digits)
	}
}

// TestDecode_DigitOutOfRange pins the boundary behavior from the contract:
// 'g' has value 16 and must fail under base 16, while 'z' (35) is the
// largest legal digit under base 36.
func TestDecode_DigitOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := basen.Decode("g", 16)
	assert.ErrorIs(t, err, basen.ErrDigitOutOfRange, "'g' (16) must not decode under base 16")

	_, err = basen.Decode("2", 2)
	assert.ErrorIs(t, err, basen.ErrDigitOutOfRange, "'2' must not decode under base 2")

	got, err := basen.Decode("z", 36)
	require.NoError(t, err, "'z' is a legal base-36 digit")
	assert.Equal(t, int64(35), got.Int64())
}

// TestDecode_EmptyDigits covers the empty string, whitespace-only input,
// and a bare sign marker.
func TestDecode_EmptyDigits(t *testing.T) {
	t.Parallel()

	for _, digits := range []string{"", "   ", "-", " - "} {
		_, err := basen.Decode(digits, 10)
		assert.ErrorIs(t, err, basen.ErrEmptyDigits, "digits %q must be rejected", digits)
	}
}

// TestEncode_InvalidBase mirrors Decode's radix validation on the formatter.
func TestEncode_InvalidBase(t *testing.T) {
	t.Parallel()

	_, err := basen.Encode(big.NewInt(7), 1)
	assert.ErrorIs(t, err, basen.ErrInvalidBase)
	_, err = basen.Encode(big.NewInt(7), 37)
	assert.ErrorIs(t, err, basen.ErrInvalidBase)
}

// TestEncode_Nil verifies a nil value encodes as zero, round-trippable
// through Decode, never as a non-decodable placeholder string.
func TestEncode_Nil(t *testing.T) {
	t.Parallel()

	s, err := basen.Encode(nil, 16)
	require.NoError(t, err)
	assert.Equal(t, "0", s)

	got, err := basen.Decode(s, 16)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Int64())
}
