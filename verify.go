package g60

// Verify reports whether encoded is a valid canonical G60 string. It
// returns nil on success, or:
//
//   - *InvalidLengthError when len(encoded) mod 11 is 1, 4 or 8, which
//     no byte sequence can produce. The length check runs first, so an
//     impossible length wins over any bad byte in the content.
//   - *InvalidByteError for the first byte outside the alphabet.
//   - ErrNotCanonical when the final partial group has nonzero padding
//     bits, or when any group's digits compose to a value no byte
//     sequence encodes to (60^11 slightly exceeds 2^64).
//
// Verify runs the decode transform over every group and discards the
// output, so it can never disagree with Decode. It does not allocate.
func Verify(encoded string) error {
	if err := checkLength(len(encoded)); err != nil {
		return err
	}

	full := len(encoded) / groupSymbols * groupSymbols
	for off := 0; off < full; off += groupSymbols {
		if _, err := decodeChunk(encoded[off:off+groupSymbols], off); err != nil {
			return err
		}
	}

	// The padding bits of a final partial group surface as nonzero
	// bytes past the meaningful decoded prefix.
	if tail := len(encoded) - full; tail != 0 {
		g, err := decodeChunk(encoded[full:], full)
		if err != nil {
			return err
		}
		for _, b := range g[DecodedLen(tail):] {
			if b != 0 {
				return ErrNotCanonical
			}
		}
	}

	return nil
}

// VerifyLoose checks that encoded is well-formed: every byte is in the
// alphabet and the length is reachable. Unlike Verify it accepts
// non-canonical strings, which still decode unambiguously; use it when
// canonicality is going to be restored with Canonicalize anyway.
func VerifyLoose(encoded string) error {
	if err := checkLength(len(encoded)); err != nil {
		return err
	}
	for i := 0; i < len(encoded); i++ {
		if decTable[encoded[i]] == invalidSymbol {
			return &InvalidByteError{Index: i, Byte: encoded[i]}
		}
	}
	return nil
}
