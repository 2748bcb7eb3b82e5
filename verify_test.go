package g60

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify_Valid(t *testing.T) {
	tests := []string{
		"",
		"0123456789ABCDEFGH",
		"JKLMNPQRSTUVWXYZab",
		"cdefghijklmnopqrst",
		"uvwxyz0123456789AB",
		"Gt4CGFiHehzRzjCF16",
		"010",
		"34564657567",
	}

	for _, encoded := range tests {
		require.NoError(t, Verify(encoded), "input %q", encoded)
	}
}

func TestVerify_InvalidLength(t *testing.T) {
	tests := []string{
		"JKLMNPQRSTUx",      // 12 = 11 + 1
		"JKLMNPQRSTUxxxx",   // 15 = 11 + 4
		"JKLMNPQRSTUxxxxxxxx", // 19 = 11 + 8
	}

	for _, encoded := range tests {
		var lenErr *InvalidLengthError
		require.ErrorAs(t, Verify(encoded), &lenErr, "input %q", encoded)
		require.Equal(t, len(encoded), lenErr.Length)
	}
}

func TestVerify_InvalidLengthWinsOverContent(t *testing.T) {
	// Impossible lengths are rejected as such whatever the bytes are.
	for _, encoded := range []string{"?", "!@#$", "\x00\x01\x02\x03\x04\x05\x06\x07"} {
		var lenErr *InvalidLengthError
		require.ErrorAs(t, Verify(encoded), &lenErr, "input %q", encoded)
	}
}

func TestVerify_InvalidByte(t *testing.T) {
	tests := []struct {
		encoded string
		index   int
		b       byte
	}{
		{"Hello, world!", 5, ','},
		{"THIS IS A TEST", 2, 'I'},
		{"TESTONTEST", 4, 'O'},
	}

	for _, tt := range tests {
		t.Run(tt.encoded, func(t *testing.T) {
			var byteErr *InvalidByteError
			require.ErrorAs(t, Verify(tt.encoded), &byteErr)
			require.Equal(t, tt.index, byteErr.Index)
			require.Equal(t, tt.b, byteErr.Byte)
		})
	}
}

func TestVerify_NotCanonical(t *testing.T) {
	tests := []string{
		// Nonzero padding bits in a 2-symbol final group.
		"0f", "2F", "5y", "BU", "Gv", "Nr", "Xd",
		// Full group whose digits exceed the 64-bit range.
		"0Co00000000",
		// Same, not as the final group.
		"0Co0000000000000000000",
	}

	for _, encoded := range tests {
		require.ErrorIs(t, Verify(encoded), ErrNotCanonical, "input %q", encoded)
	}
}

func TestVerify_EveryEncodingVerifies(t *testing.T) {
	for length := 0; length <= 16; length++ {
		for b := 0; b <= 255; b++ {
			encoded := Encode(bytes.Repeat([]byte{byte(b)}, length))
			if err := Verify(encoded); err != nil {
				t.Fatalf("Verify rejected Encode output for %d x %d: %v", length, b, err)
			}
		}
	}
}

// ============================================================
// Alphabet exhaustiveness
// ============================================================

func TestAlphabet_SixtySymbolsRoundTrip(t *testing.T) {
	require.Len(t, alphabet, 60)

	for digit := 0; digit < 60; digit++ {
		sym := alphabet[digit]
		require.Equal(t, byte(digit), decTable[sym], "symbol %q", sym)
	}
}

func TestAlphabet_RejectsEveryOtherByte(t *testing.T) {
	inAlphabet := make(map[byte]bool, 60)
	for i := 0; i < len(alphabet); i++ {
		inAlphabet[alphabet[i]] = true
	}

	for b := 0; b <= 255; b++ {
		if inAlphabet[byte(b)] {
			continue
		}
		// Place the candidate in the middle of an otherwise valid
		// 3-symbol string.
		encoded := string([]byte{'0', byte(b), '0'})

		var byteErr *InvalidByteError
		require.ErrorAs(t, Verify(encoded), &byteErr, "byte 0x%02x", b)
		require.Equal(t, 1, byteErr.Index)
		require.Equal(t, byte(b), byteErr.Byte)
	}
}

func TestVerifyLoose(t *testing.T) {
	// Accepts well-formed non-canonical strings...
	require.NoError(t, VerifyLoose("001"))
	require.NoError(t, VerifyLoose("0Co00000000"))

	// ...but still rejects structural errors.
	var lenErr *InvalidLengthError
	require.ErrorAs(t, VerifyLoose("JKLMNPQRSTUx"), &lenErr)

	var byteErr *InvalidByteError
	require.ErrorAs(t, VerifyLoose("TESTONTEST"), &byteErr)
	require.Equal(t, 4, byteErr.Index)
}
