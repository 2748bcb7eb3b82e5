package g60

import (
	"errors"
	"fmt"
)

// ErrNotCanonical reports an encoded string whose final partial group
// carries nonzero padding bits. It decodes to the same bytes as its
// canonical form, but accepting it would give one byte sequence several
// textual encodings.
var ErrNotCanonical = errors.New("g60: encoded string is not canonical")

// InvalidByteError reports a byte outside the G60 alphabet.
type InvalidByteError struct {
	Index int
	Byte  byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("g60: invalid byte %q at index %d", e.Byte, e.Index)
}

// InvalidLengthError reports a string length no byte sequence can
// encode to: length mod 11 in {1, 4, 8}.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("g60: invalid length %d: no encoded string has length 1, 4 or 8 modulo 11", e.Length)
}

// BufferSizeError reports a destination buffer smaller than the exact
// size the operation needs. Required is always the full size, so the
// caller can retry with a correctly sized buffer.
type BufferSizeError struct {
	Actual   int
	Required int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("g60: buffer too small: have %d bytes, need %d", e.Actual, e.Required)
}

// InvalidUTF8Error reports decoded bytes that are not valid UTF-8. It
// carries the raw bytes so the caller can still inspect them.
type InvalidUTF8Error struct {
	Bytes []byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("g60: decoded %d bytes are not valid UTF-8", len(e.Bytes))
}
