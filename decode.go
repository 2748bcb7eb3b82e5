package g60

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Decode verifies encoded and decodes it into a fresh byte slice of
// exactly DecodedLen(len(encoded)) bytes. The error is one of the
// verification errors: *InvalidLengthError, *InvalidByteError or
// ErrNotCanonical.
func Decode(encoded string) ([]byte, error) {
	if err := Verify(encoded); err != nil {
		return nil, err
	}
	dst := make([]byte, DecodedLen(len(encoded)))
	decode(dst, encoded)
	return dst, nil
}

// DecodeString decodes encoded into a string. On top of Decode's
// errors it fails with *InvalidUTF8Error when the decoded bytes are
// not valid UTF-8; the error carries the bytes.
func DecodeString(encoded string) (string, error) {
	b, err := Decode(encoded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &InvalidUTF8Error{Bytes: b}
	}
	return string(b), nil
}

// DecodeInto verifies encoded and decodes it into dst, returning the
// number of bytes written, always DecodedLen(len(encoded)). The
// capacity check and the verification both run before anything is
// written, so dst is untouched on error. Extra room in dst is left
// untouched as well.
func DecodeInto(dst []byte, encoded string) (int, error) {
	required := DecodedLen(len(encoded))
	if len(dst) < required {
		return 0, &BufferSizeError{Actual: len(dst), Required: required}
	}
	if err := Verify(encoded); err != nil {
		return 0, err
	}
	decode(dst[:required], encoded)
	return required, nil
}

// DecodeTo verifies encoded and writes the decoded bytes to w group by
// group, returning the number of bytes written. After verification only
// a write failure can make it fail; the error wraps the writer's.
func DecodeTo(w io.Writer, encoded string) (int, error) {
	if err := Verify(encoded); err != nil {
		return 0, err
	}
	return decodeTo(w, encoded)
}

// DecodeUnchecked decodes encoded without verifying it first. If
// encoded is not a valid canonical G60 string the result is garbage of
// length DecodedLen(len(encoded)): invalid symbols read as digit zero
// and padding bits are dropped. It never panics and never reads or
// writes out of bounds. Use Decode unless the input has already been
// verified.
func DecodeUnchecked(encoded string) []byte {
	dst := make([]byte, DecodedLen(len(encoded)))
	decode(dst, encoded)
	return dst
}

// DecodeIntoUnchecked is DecodeInto without the verification pass. The
// capacity contract still holds and is still reported through
// *BufferSizeError; the decoded content carries DecodeUnchecked's
// garbage-in, garbage-out contract.
func DecodeIntoUnchecked(dst []byte, encoded string) (int, error) {
	required := DecodedLen(len(encoded))
	if len(dst) < required {
		return 0, &BufferSizeError{Actual: len(dst), Required: required}
	}
	decode(dst[:required], encoded)
	return required, nil
}

// DecodeToUnchecked is DecodeTo without the verification pass.
func DecodeToUnchecked(w io.Writer, encoded string) (int, error) {
	return decodeTo(w, encoded)
}

// decode writes the full decoding of encoded into dst, which must hold
// exactly DecodedLen(len(encoded)) bytes. Invalid symbols are ignored;
// the checked entry points have already rejected them.
func decode(dst []byte, encoded string) {
	full := len(encoded) / groupSymbols * groupSymbols
	di := 0

	for off := 0; off < full; off += groupSymbols {
		g, _ := decodeChunk(encoded[off:off+groupSymbols], off)
		copy(dst[di:], g[:])
		di += groupBytes
	}

	if tail := len(encoded) - full; tail != 0 {
		g, _ := decodeChunk(encoded[full:], full)
		copy(dst[di:], g[:DecodedLen(tail)])
	}
}

func decodeTo(w io.Writer, encoded string) (int, error) {
	full := len(encoded) / groupSymbols * groupSymbols
	written := 0

	for off := 0; off < full; off += groupSymbols {
		g, _ := decodeChunk(encoded[off:off+groupSymbols], off)
		n, err := w.Write(g[:])
		written += n
		if err != nil {
			return written, fmt.Errorf("g60: writing decoded output: %w", err)
		}
	}

	if tail := len(encoded) - full; tail != 0 {
		g, _ := decodeChunk(encoded[full:], full)
		n, err := w.Write(g[:DecodedLen(tail)])
		written += n
		if err != nil {
			return written, fmt.Errorf("g60: writing decoded output: %w", err)
		}
	}

	return written, nil
}
