package g60

import (
	"bytes"
	"errors"
)

// IsCanonical reports whether encoded is a valid G60 string in
// canonical form. A string is canonical exactly when Canonicalize
// would leave it unchanged.
func IsCanonical(encoded string) bool {
	return Verify(encoded) == nil
}

// Canonicalize returns the canonical form of a well-formed encoded
// string: the unique encoding that decodes to the same bytes. Already
// canonical input is returned as-is without allocating. Input that is
// not well-formed fails with *InvalidLengthError or *InvalidByteError.
func Canonicalize(encoded string) (string, error) {
	switch err := Verify(encoded); {
	case err == nil:
		return encoded, nil
	case errors.Is(err, ErrNotCanonical):
		buf := []byte(encoded)
		if err := CanonicalizeInPlace(buf); err != nil {
			return "", err
		}
		return string(buf), nil
	default:
		return "", err
	}
}

// CanonicalizeInPlace rewrites buf to its canonical form. Every group
// is decoded and re-encoded, and only groups whose symbols differ are
// written back. The rewrite never changes the length and only ever
// writes alphabet bytes, so a buffer holding UTF-8 text stays UTF-8
// text.
//
// Input that is not well-formed fails with *InvalidLengthError or
// *InvalidByteError; groups before the offending one may already have
// been recomputed, but recomputing a well-formed group is the identity
// so the buffer content is unchanged.
func CanonicalizeInPlace(buf []byte) error {
	if err := checkLength(len(buf)); err != nil {
		return err
	}

	for off := 0; off < len(buf); off += groupSymbols {
		end := off + groupSymbols
		if end > len(buf) {
			end = len(buf)
		}
		group := buf[off:end]

		// Non-canonical groups are the whole point here: keep the
		// truncated bytes and project them back onto the alphabet.
		decoded, err := decodeChunk(group, off)
		if err != nil && !errors.Is(err, ErrNotCanonical) {
			return err
		}
		reencoded := encodeChunk(decoded[:DecodedLen(len(group))])
		if !bytes.Equal(group, reencoded[:len(group)]) {
			copy(group, reencoded[:len(group)])
		}
	}

	return nil
}
