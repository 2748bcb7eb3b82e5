package g60

import (
	cryptorand "crypto/rand"
	mathrand "math/rand/v2"
)

// RandomBytes encodes n bytes drawn from the operating system's
// entropy source and returns the canonical result. It panics if the
// entropy source fails, which means the process state is already
// unusable.
func RandomBytes(n int) string {
	return RandomBytesFrom(n, mustCryptoFill)
}

// RandomBytesInsecure is RandomBytes backed by math/rand/v2: faster,
// not suitable for secrets.
func RandomBytesInsecure(n int) string {
	return RandomBytesFrom(n, insecureFill)
}

// RandomBytesFrom encodes n bytes produced by fill, which must
// overwrite the whole slice it is given.
func RandomBytesFrom(n int, fill func([]byte)) string {
	buf := make([]byte, n)
	fill(buf)
	return Encode(buf)
}

// Random returns a canonical random string of the given encoded
// length, drawn from the operating system's entropy source. Lengths no
// byte count can produce (1, 4 or 8 modulo 11) are shortened by one.
func Random(length int) string {
	return RandomFrom(length, mustCryptoFill)
}

// RandomInsecure is Random backed by math/rand/v2.
func RandomInsecure(length int) string {
	return RandomFrom(length, insecureFill)
}

// RandomFrom is Random with a caller-supplied generator.
func RandomFrom(length int, fill func([]byte)) string {
	if checkLength(length) != nil {
		length--
	}
	return RandomBytesFrom(DecodedLen(length), fill)
}

func mustCryptoFill(buf []byte) {
	if _, err := cryptorand.Read(buf); err != nil {
		panic("g60: entropy source failed: " + err.Error())
	}
}

func insecureFill(buf []byte) {
	for i := 0; i < len(buf); i += 8 {
		v := mathrand.Uint64()
		for j := i; j < len(buf) && j < i+8; j++ {
			buf[j] = byte(v)
			v >>= 8
		}
	}
}
