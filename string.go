package g60

// A String is a verified G60 encoded string. The zero value is the
// empty encoding. Contents are guaranteed well-formed (decodable) but
// not necessarily canonical; use IsCanonical and Canonicalize to work
// with the canonical form.
type String struct {
	value string
}

// NewString wraps an already encoded string, verifying that it is
// well-formed first.
func NewString(s string) (String, error) {
	if err := VerifyLoose(s); err != nil {
		return String{}, err
	}
	return String{value: s}, nil
}

// NewStringUnchecked wraps s without verifying it. If s is not a
// well-formed G60 string every method on the result returns garbage;
// none of them panic or read out of bounds.
func NewStringUnchecked(s string) String {
	return String{value: s}
}

// FromBytes encodes b. The result is always canonical.
func FromBytes(b []byte) String {
	return String{value: Encode(b)}
}

// RandomString encodes byteLen bytes from the operating system's
// entropy source. The result is always canonical.
func RandomString(byteLen int) String {
	return String{value: RandomBytes(byteLen)}
}

// String returns the textual representation.
func (s String) String() string {
	return s.value
}

// Len returns the number of symbols.
func (s String) Len() int {
	return len(s.value)
}

// Bytes decodes the string. Verification was already paid for at
// construction, so this takes the unchecked path.
func (s String) Bytes() []byte {
	return DecodeUnchecked(s.value)
}

// DecodeInto decodes the string into dst, returning the number of
// bytes written or a *BufferSizeError.
func (s String) DecodeInto(dst []byte) (int, error) {
	return DecodeIntoUnchecked(dst, s.value)
}

// IsCanonical reports whether the string is in canonical form.
func (s String) IsCanonical() bool {
	return IsCanonical(s.value)
}

// Canonicalized returns the canonical form of the string. When the
// receiver is already canonical it is returned unchanged, without
// allocating.
func (s String) Canonicalized() String {
	if s.IsCanonical() {
		return s
	}
	buf := []byte(s.value)
	// Contents are well-formed by construction.
	_ = CanonicalizeInPlace(buf)
	return String{value: string(buf)}
}

// Canonicalize rewrites the receiver to its canonical form.
func (s *String) Canonicalize() {
	*s = s.Canonicalized()
}

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, verifying the
// incoming text the same way NewString does.
func (s *String) UnmarshalText(text []byte) error {
	parsed, err := NewString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
