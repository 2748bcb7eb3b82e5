package g60

import (
	"fmt"
	"io"
)

// Encode encodes src into a G60 string. The result always has exactly
// EncodedLen(len(src)) symbols and is canonical.
func Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	encode(dst, src)
	return string(dst)
}

// EncodeString encodes the raw bytes of s. Shorthand for
// Encode([]byte(s)).
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// EncodeInto encodes src into dst and returns the number of symbols
// written, always EncodedLen(len(src)). If dst is too small it returns
// a *BufferSizeError before writing anything; if dst is larger than
// needed the extra bytes are left untouched.
func EncodeInto(dst []byte, src []byte) (int, error) {
	required := EncodedLen(len(src))
	if len(dst) < required {
		return 0, &BufferSizeError{Actual: len(dst), Required: required}
	}
	encode(dst[:required], src)
	return required, nil
}

// EncodeTo encodes src into w group by group and returns the number of
// symbols written. Only a write failure can make it fail; the error
// wraps the writer's.
func EncodeTo(w io.Writer, src []byte) (int, error) {
	full := len(src) &^ (groupBytes - 1)
	written := 0

	for off := 0; off < full; off += groupBytes {
		g := encodeChunk(src[off : off+groupBytes])
		n, err := w.Write(g[:])
		written += n
		if err != nil {
			return written, fmt.Errorf("g60: writing encoded output: %w", err)
		}
	}

	if tail := len(src) - full; tail != 0 {
		g := encodeChunk(src[full:])
		n, err := w.Write(g[:EncodedLen(tail)])
		written += n
		if err != nil {
			return written, fmt.Errorf("g60: writing encoded output: %w", err)
		}
	}

	return written, nil
}

// encode writes the full encoding of src into dst, which must hold
// exactly EncodedLen(len(src)) bytes.
func encode(dst []byte, src []byte) {
	full := len(src) &^ (groupBytes - 1)
	di := 0

	for off := 0; off < full; off += groupBytes {
		g := encodeChunk(src[off : off+groupBytes])
		copy(dst[di:], g[:])
		di += groupSymbols
	}

	if tail := len(src) - full; tail != 0 {
		g := encodeChunk(src[full:])
		copy(dst[di:], g[:EncodedLen(tail)])
	}
}
