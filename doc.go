// Package g60 implements the G60 binary-to-text encoding.
//
// G60 packs every 8 bytes of input into 11 symbols drawn from a
// 60-character alphabet. Since 60^11 > 2^64 > 60^10, eleven base-60
// digits are exactly enough to hold 64 bits, which gives G60 a fixed
// 8:11 byte-to-symbol ratio and a density between base58 and base64.
//
// # Alphabet
//
// The alphabet is [0-9A-HJ-NP-Za-z]: the ten digits, the uppercase
// letters without I and O, and the lowercase letters. I and O are
// excluded because they read too much like 1, l and 0. Encoding is
// order-preserving: comparing two encoded strings byte-wise gives the
// same result as comparing the original byte sequences.
//
// # Canonical form
//
// Eleven base-60 digits hold slightly more than 64 bits, and a final
// partial group holds slightly more than its bytes need, so some
// well-formed strings are not the encoding of any byte sequence: they
// decode to the same bytes as a shorter sibling. [Verify] and the
// checked decoders reject them, so every byte sequence has exactly one
// valid encoding. [Canonicalize] projects any well-formed string onto
// that canonical form.
//
// # Example
//
//	encoded := g60.Encode([]byte("Hello, world!"))
//	// encoded == "Gt4CGFiHehzRzjCF16"
//
//	decoded, err := g60.Decode(encoded)
//	// decoded == []byte("Hello, world!")
//
// All functions are pure and safe for concurrent use.
package g60
