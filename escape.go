package unicodec

import "math/bits"

// A Unicode escape is `\u` followed by four hex digits holding one UTF-16
// code unit, most significant digit first.
const (
	EscapePrefixLen = 2
	EscapeBodyLen   = 4
	EscapeLen       = EscapePrefixLen + EscapeBodyLen
)

const escapePrefix = `\u`

// Letter offsets added to a nibble above 9 after '0': 'A'-'0'-10 and 'a'-'0'-10.
const (
	hexUpperOffset = 'A' - '0' - 10
	hexLowerOffset = 'a' - '0' - 10
)

// SurrogateFlags classifies a decoded escape value so a caller can pair a
// high escape with the low escape that follows it.
type SurrogateFlags struct {
	High bool
	Low  bool
}

// HasEscapePrefix reports whether buf holds `\u` at pos.
func HasEscapePrefix(buf []byte, pos int) bool {
	return HasLiteralAt(buf, pos, escapePrefix)
}

// HasEscape reports whether a full escape fits at pos and starts with `\u`.
// Digits are not checked.
func HasEscape(buf []byte, pos int) bool {
	return pos >= 0 && len(buf)-pos >= EscapeLen && HasEscapePrefix(buf, pos)
}

// InvalidHexDigitMask sets bit i for every d[i] that is not in 0-9A-Fa-f.
func InvalidHexDigitMask(d [4]byte) uint8 {
	var m uint8
	for i, c := range d {
		notDigit := c-'0' > '9'-'0'
		notHex := (c|0x20)-'a' > 'f'-'a'
		if notDigit && notHex {
			m |= 1 << i
		}
	}
	return m
}

// IndexInvalidHexDigit returns the index of the first non hex digit in d,
// or -1 if all four are valid.
func IndexInvalidHexDigit(d [4]byte) int {
	m := InvalidHexDigitMask(d)
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros8(m)
}

// hexNibble maps a digit known valid to its value. Letters have bit 6 set
// and low nibble 1..6, so they gain 9; case does not matter.
func hexNibble(c byte) uint32 {
	return uint32(c&0x0F) + 9*uint32(c>>6&1)
}

func parseHexDigits(d [4]byte) uint32 {
	return hexNibble(d[0])<<12 | hexNibble(d[1])<<8 | hexNibble(d[2])<<4 | hexNibble(d[3])
}

// surrogateFlagsOf looks at the top 6 bits of a 16 bit unit:
// 110110 is a high surrogate, 110111 a low one.
func surrogateFlagsOf(v uint32) SurrogateFlags {
	top := v >> 10
	return SurrogateFlags{
		High: top == 0x36,
		Low:  top == 0x37,
	}
}

// DecodeEscape decodes the escape at *pos. The `\u` prefix is not checked;
// use HasEscapePrefix first.
//
// If fewer than EscapeLen bytes remain, it returns Overflow and sets *pos
// to len(buf). If a digit is invalid, it returns BadEncoding with *pos on
// that digit. Failures return Replacement and zero flags. On Success *pos
// advances by EscapeLen.
func DecodeEscape(buf []byte, pos *int) (c uint32, flags SurrogateFlags, res Result) {
	i := *pos
	if len(buf)-i < EscapeLen {
		*pos = len(buf)
		return Replacement, SurrogateFlags{}, Overflow
	}

	d := [4]byte(buf[i+EscapePrefixLen : i+EscapeLen])
	if bad := IndexInvalidHexDigit(d); bad >= 0 {
		*pos = i + EscapePrefixLen + bad
		return Replacement, SurrogateFlags{}, BadEncoding
	}

	c = parseHexDigits(d)
	*pos = i + EscapeLen
	return c, surrogateFlagsOf(c), Success
}

// DecodeEscapeUnchecked decodes an escape whose digits are known valid
// and advances *pos by EscapeLen.
func DecodeEscapeUnchecked(buf []byte, pos *int) uint32 {
	i := *pos
	c := parseHexDigits([4]byte(buf[i+EscapePrefixLen : i+EscapeLen]))
	*pos = i + EscapeLen
	return c
}

// EncodeEscape writes c as `\uXXXX` with uppercase digits at *pos and
// advances *pos by EscapeLen. c must not exceed MaxBMP; split
// supplementary codepoints with SplitSurrogatesUnchecked first.
func EncodeEscape(c uint32, dst []byte, pos *int) {
	encodeEscape(c, dst, pos, hexUpperOffset)
}

// EncodeEscapeLower is EncodeEscape with lowercase digits.
func EncodeEscapeLower(c uint32, dst []byte, pos *int) {
	encodeEscape(c, dst, pos, hexLowerOffset)
}

func encodeEscape(c uint32, dst []byte, pos *int, letter uint32) {
	debugAssert(c <= MaxBMP, "EncodeEscape: codepoint outside the BMP")

	i := *pos
	d := dst[i : i+EscapeLen]
	d[0] = '\\'
	d[1] = 'u'
	d[2] = hexDigit(c>>12&0xF, letter)
	d[3] = hexDigit(c>>8&0xF, letter)
	d[4] = hexDigit(c>>4&0xF, letter)
	d[5] = hexDigit(c&0xF, letter)
	*pos = i + EscapeLen
}

// hexDigit is branchless: 9-nb wraps for nb > 9, leaving high bits set
// that select the letter offset.
func hexDigit(nb, letter uint32) byte {
	return byte(nb + '0' + (9-nb)>>8&letter)
}
