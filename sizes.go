package g60

// EncodedLen returns the exact number of symbols produced by encoding
// n bytes: ceil(11n/8).
func EncodedLen(n int) int {
	return (11*n + 7) >> 3
}

// DecodedLen returns the exact number of bytes produced by decoding n
// symbols: floor(8n/11).
func DecodedLen(n int) int {
	return (n << 3) / 11
}

// checkLength rejects lengths that no byte count can encode to. A final
// partial group has 2, 3, 5, 6, 7, 9 or 10 symbols; residues 1, 4 and 8
// are unreachable whatever the content.
func checkLength(n int) error {
	switch n % groupSymbols {
	case 1, 4, 8:
		return &InvalidLengthError{Length: n}
	}
	return nil
}
