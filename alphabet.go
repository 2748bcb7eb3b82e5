package g60

// alphabet maps each base-60 digit to its symbol. Digits first, then
// uppercase without I and O, then lowercase. The ordering is what makes
// the encoding order-preserving, so it must never change.
const alphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// invalidSymbol marks bytes outside the alphabet in decTable.
const invalidSymbol = 0xFF

// decTable is the inverse of alphabet: symbol byte to digit value, with
// invalidSymbol everywhere else. Each line covers 16 byte values.
const decTable = "" +
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 00-0f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 10-1f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 20-2f
	"\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\xff\xff\xff\xff\xff\xff" + // 30-3f '0'-'9'
	"\xff\x0a\x0b\x0c\x0d\x0e\x0f\x10\x11\xff\x12\x13\x14\x15\x16\xff" + // 40-4f 'A'-'N' (no 'I')
	"\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f\x20\x21\xff\xff\xff\xff\xff" + // 50-5f 'P'-'Z' (no 'O')
	"\xff\x22\x23\x24\x25\x26\x27\x28\x29\x2a\x2b\x2c\x2d\x2e\x2f\x30" + // 60-6f 'a'-'o'
	"\x31\x32\x33\x34\x35\x36\x37\x38\x39\x3a\x3b\xff\xff\xff\xff\xff" + // 70-7f 'p'-'z'
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 80-8f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // 90-9f
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // a0-af
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // b0-bf
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // c0-cf
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // d0-df
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" + // e0-ef
	"\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff\xff" //   f0-ff
