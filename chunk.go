package g60

const (
	// groupBytes and groupSymbols fix the 8:11 packing ratio. A full
	// group of 8 bytes is one 64-bit value; 11 base-60 digits are the
	// smallest count that can hold it (60^11 > 2^64 > 60^10).
	groupBytes   = 8
	groupSymbols = 11
)

// byteSeq lets the chunk transform run over a string or a byte slice
// without copying between them.
type byteSeq interface{ ~string | ~[]byte }

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

// encodeChunk packs up to 8 bytes into 11 alphabet symbols. Short input
// behaves as if zero-padded to 8 bytes; callers truncate the result to
// EncodedLen of the real byte count.
//
// The div/rem network is a fixed mixed-radix packing: each output digit
// combines a remainder of one byte with a quotient of the next (the
// first digit pair holds 14*byte0 + byte1/20, and so on down the
// group), so every step stays well inside a machine word instead of
// running an 8-byte bignum division. The layout keeps byte order, which
// is what makes the encoding order-preserving.
func encodeChunk(src []byte) [groupSymbols]byte {
	var b [groupBytes]int
	for i := 0; i < len(src) && i < groupBytes; i++ {
		b[i] = int(src[i])
	}

	c2, r2 := divmod(b[1], 20)
	c1, r1 := divmod(14*b[0]+c2, 60)
	c3, r3 := divmod(b[2], 90)
	b3h := b[3] >> 7
	b3l := b[3] & 0x7F
	c4, r4 := divmod(r3<<1+b3h, 3)
	c6, r6 := divmod(b[4], 30)
	c5, r5 := divmod(9*b3l+c6, 60)
	c7, r7 := divmod(b[5], 150)
	c8a, r8a := divmod(b[6], 144)
	c8, r8 := divmod(r7<<1+c8a, 5)
	c9, r9 := divmod(r8a, 12)
	c10, r10 := divmod(b[7], 60)

	return [groupSymbols]byte{
		alphabet[c1],
		alphabet[r1],
		alphabet[3*r2+c3],
		alphabet[c4],
		alphabet[20*r4+c5],
		alphabet[r5],
		alphabet[r6<<1+c7],
		alphabet[c8],
		alphabet[12*r8+c9],
		alphabet[5*r9+c10],
		alphabet[r10],
	}
}

// decodeChunk unpacks up to 11 symbols into 8 bytes, the exact inverse
// of encodeChunk. Short input behaves as if padded with zero-valued
// digits. off is the absolute offset of the chunk within the encoded
// string, used only for error reporting.
func decodeChunk[T byteSeq](src T, off int) ([groupBytes]byte, error) {
	var d [groupSymbols]int
	for i := 0; i < len(src) && i < groupSymbols; i++ {
		v := decTable[src[i]]
		if v == invalidSymbol {
			return [groupBytes]byte{}, &InvalidByteError{Index: off + i, Byte: src[i]}
		}
		d[i] = int(v)
	}

	b1, r1 := divmod(60*d[0]+d[1], 14)
	b2, r2 := divmod(d[2], 3)
	b3, r3 := divmod(d[4], 20)
	aux := 3*d[3] + b3
	b3bis := aux >> 1
	r3bis := aux & 0x1
	b4, r4 := divmod(60*r3+d[5], 9)
	b5 := d[6] >> 1
	r5 := d[6] & 0x1
	b6, r6 := divmod(60*d[7]+d[8], 24)
	b7, r7 := divmod(d[9], 5)

	vals := [groupBytes]int{
		b1,
		r1*20 + b2,
		r2*90 + b3bis,
		128*r3bis + b4,
		r4*30 + b5,
		r5*150 + b6,
		r6*12 + b7,
		60*r7 + d[10],
	}

	// 60^11 > 2^64, so some digit combinations compose to values above
	// 255: symbols that no byte sequence encodes to. They are reported
	// as non-canonical, and the truncated bytes are still returned so
	// the canonicalizer can project them onto the real encoding.
	var out [groupBytes]byte
	var err error
	for i, v := range vals {
		if v > 0xFF {
			err = ErrNotCanonical
		}
		out[i] = byte(v)
	}
	return out, err
}
