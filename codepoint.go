package unicodec

// Codepoint limits per UTF-8 sequence length (RFC 3629).
const (
	MaxOneByte    = 0x7F
	MaxTwoBytes   = 0x7FF
	MaxThreeBytes = 0xFFFF

	MaxBMP       = 0xFFFF
	MaxCodepoint = 0x10FFFF
)

// First codepoint that needs a given sequence length. Anything below is overlong.
const (
	FirstTwoByte   = 0x80
	FirstThreeByte = 0x800
	FirstFourByte  = 0x10000
)

// Replacement is U+FFFD. It always encodes to ReplacementLength bytes.
const (
	Replacement       = 0xFFFD
	ReplacementLength = 3
)

// IsValidCodepoint reports whether c is a Unicode scalar value:
// not a surrogate and not above MaxCodepoint.
func IsValidCodepoint(c uint32) bool {
	return c <= 0xD7FF || (c >= 0xE000 && c <= MaxCodepoint)
}

// UTF8Len returns the number of bytes needed to encode c as UTF-8.
// ok is false (and n is 0) when c is not a valid codepoint.
func UTF8Len(c uint32) (n int, ok bool) {
	if !IsValidCodepoint(c) {
		return 0, false
	}
	return UTF8LenUnchecked(c), true
}

// UTF8LenUnchecked is UTF8Len for codepoints already known valid.
// The result for surrogates or values above MaxCodepoint is meaningless.
func UTF8LenUnchecked(c uint32) int {
	if c <= MaxOneByte {
		return 1
	}
	return 2 + b2i(c > MaxTwoBytes) + b2i(c > MaxThreeBytes)
}

// UTF8LenBranchless computes the same value as UTF8LenUnchecked without
// the ASCII early return.
func UTF8LenBranchless(c uint32) int {
	return 1 + b2i(c > MaxOneByte) + b2i(c > MaxTwoBytes) + b2i(c > MaxThreeBytes)
}

// IsControl reports whether c is a C0 control, DEL or a C1 control.
func IsControl(c uint32) bool {
	return c <= 0x1F || (c >= 0x7F && c <= 0x9F)
}

// IsUTF8TwoByteControl reports whether c is a C1 control, the only
// controls that take two bytes in UTF-8.
func IsUTF8TwoByteControl(c uint32) bool {
	return c >= 0x80 && c <= 0x9F
}

// b2i compiles to a SETcc on amd64.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
