package g60

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewString(t *testing.T) {
	s, err := NewString("Gt4CGFiHehzRzjCF16")
	require.NoError(t, err)
	assert.Equal(t, "Gt4CGFiHehzRzjCF16", s.String())
	assert.Equal(t, 18, s.Len())
	assert.True(t, s.IsCanonical())
}

func TestNewString_AcceptsNonCanonical(t *testing.T) {
	// Well-formed is enough to construct; canonicality is a separate
	// property.
	s, err := NewString("001")
	require.NoError(t, err)
	assert.False(t, s.IsCanonical())
	assert.Equal(t, []byte{0, 0}, s.Bytes())
}

func TestNewString_RejectsIllFormed(t *testing.T) {
	_, err := NewString("Hello, world!")
	var byteErr *InvalidByteError
	require.ErrorAs(t, err, &byteErr)

	_, err = NewString("JKLMNPQRSTUx")
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestFromBytes(t *testing.T) {
	s := FromBytes([]byte("Hello, world!"))
	assert.Equal(t, "Gt4CGFiHehzRzjCF16", s.String())
	assert.True(t, s.IsCanonical())
	assert.Equal(t, []byte("Hello, world!"), s.Bytes())
}

func TestString_DecodeInto(t *testing.T) {
	s := FromBytes([]byte("Hello, world!"))

	dst := make([]byte, 13)
	n, err := s.DecodeInto(dst)
	require.NoError(t, err)
	require.Equal(t, 13, n)
	require.Equal(t, "Hello, world!", string(dst))

	_, err = s.DecodeInto(make([]byte, 4))
	var sizeErr *BufferSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestString_Canonicalized(t *testing.T) {
	s, err := NewString("0Co00000000")
	require.NoError(t, err)

	canonical := s.Canonicalized()
	assert.Equal(t, "00000000000", canonical.String())
	assert.True(t, canonical.IsCanonical())
	assert.Equal(t, "0Co00000000", s.String(), "the receiver is a value, not rewritten")

	// Already canonical strings come back unchanged.
	assert.Equal(t, canonical, canonical.Canonicalized())
}

func TestString_CanonicalizePointer(t *testing.T) {
	s, err := NewString("001")
	require.NoError(t, err)

	s.Canonicalize()
	assert.Equal(t, "000", s.String())
}

func TestString_RandomString(t *testing.T) {
	s := RandomString(16)
	assert.Equal(t, EncodedLen(16), s.Len())
	assert.True(t, s.IsCanonical())
}

func TestString_TextMarshaling(t *testing.T) {
	type payload struct {
		ID String `json:"id"`
	}

	encoded, err := json.Marshal(payload{ID: FromBytes([]byte("Hello, world!"))})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"Gt4CGFiHehzRzjCF16"}`, string(encoded))

	var decoded payload
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, []byte("Hello, world!"), decoded.ID.Bytes())

	require.Error(t, json.Unmarshal([]byte(`{"id":"not G60!"}`), &decoded))
}

func TestString_ZeroValue(t *testing.T) {
	var s String
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsCanonical())
	assert.Empty(t, s.Bytes())
}
