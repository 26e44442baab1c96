package base36

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "0"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "10"},
		{1295, "zz"},
		{1679615, "zzzz"},
		{12341234, "7cik2"},
		{math.MaxUint64, "3w5e11264sgsf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.input))
		})
	}
}

func TestEncode_SingleDigitFastPath(t *testing.T) {
	for n := uint64(0); n < Radix; n++ {
		got := Encode(n)
		require.Len(t, got, 1)
		assert.Equal(t, Alphabet[n], got[0])
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 35, 36, 1679615, 1679616, math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64}
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		values = append(values, r.Uint64())
		values = append(values, r.Uint64N(1<<20))
	}

	for _, n := range values {
		got, err := Decode(Encode(n))
		require.NoError(t, err)
		require.Equal(t, n, got, "round trip of %d", n)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrInvalidDigit},
		{"uppercase", "ABC", ErrInvalidDigit},
		{"dash", "ab-c", ErrInvalidDigit},
		{"space", "a b", ErrInvalidDigit},
		{"overflow", "3w5e11264sgsg", ErrOverflow},
		{"too long", "zzzzzzzzzzzzzz", ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeBytes(t *testing.T) {
	assert.Equal(t, "0", EncodeBytes(nil))
	assert.Equal(t, "0", EncodeBytes([]byte{0, 0, 0}))
	assert.Equal(t, "7cik2", EncodeBytes([]byte{0xbc, 0x4f, 0xf2}))

	// 512-bit maximum: 100 digits, no precision loss.
	maxBytes := make([]byte, 64)
	for i := range maxBytes {
		maxBytes[i] = 0xff
	}
	s := EncodeBytes(maxBytes)
	assert.Len(t, s, 100)

	n, err := DecodeBig(s)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Cmp(new(big.Int).SetBytes(maxBytes)))
}

func TestEncodeBytes_MatchesEncode(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		n := r.Uint64()
		b := big.NewInt(0).SetUint64(n).Bytes()
		assert.Equal(t, Encode(n), EncodeBytes(b))
	}
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pad single", "3", 4, "0003"},
		{"pad several", "foo", 5, "00foo"},
		{"exact", "foo", 3, "foo"},
		{"truncate keeps rightmost", "abc", 1, "c"},
		{"truncate two", "abcdef", 2, "ef"},
		{"empty input", "", 2, "00"},
		{"zero width", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadOrTruncate(tt.input, tt.width))
		})
	}
}

func TestEncodePadded(t *testing.T) {
	assert.Equal(t, "0000", EncodePadded(0, 4))
	assert.Equal(t, "zzzz", EncodePadded(1679615, 4))
	assert.Equal(t, "0000", EncodePadded(1679616, 4))
	assert.Equal(t, "ik2", EncodePadded(12341234, 3))
}

func TestPow(t *testing.T) {
	assert.Equal(t, uint64(1), Pow(0))
	assert.Equal(t, uint64(1296), Pow(2))
	assert.Equal(t, uint64(1679616), Pow(4))
	assert.Equal(t, uint64(4738381338321616896), Pow(MaxPowWidth))
	assert.Panics(t, func() { Pow(MaxPowWidth + 1) })
	assert.Panics(t, func() { Pow(-1) })
}

func TestIsDigit(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		assert.True(t, IsDigit(Alphabet[i]))
	}
	for _, c := range []byte{'A', 'Z', '-', '_', ' ', '/', ':', '`', '{'} {
		assert.False(t, IsDigit(c), "IsDigit(%q)", c)
	}
}

func BenchmarkEncodeSmall(b *testing.B) {
	for b.Loop() {
		Encode(17)
	}
}

func BenchmarkEncodeMax(b *testing.B) {
	for b.Loop() {
		Encode(math.MaxUint64)
	}
}

func BenchmarkEncodeBytes512(b *testing.B) {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	for b.Loop() {
		EncodeBytes(buf)
	}
}
