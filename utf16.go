package unicodec

// 0xD800-0xDC00 encodes the high 10 bits of a pair.
// 0xDC00-0xE000 encodes the low 10 bits of a pair.
// The value is those 20 bits plus 0x10000.
const (
	surrHighFirst = 0xD800
	surrLowFirst  = 0xDC00
	surrLast      = 0xDFFF
	surrSelf      = 0x10000
)

// IsHighSurrogate reports whether c is in 0xD800..0xDBFF.
func IsHighSurrogate(c uint32) bool {
	return c >= surrHighFirst && c < surrLowFirst
}

// IsLowSurrogate reports whether c is in 0xDC00..0xDFFF.
func IsLowSurrogate(c uint32) bool {
	return c >= surrLowFirst && c <= surrLast
}

// IsSurrogate reports whether c is either half of a UTF-16 pair.
func IsSurrogate(c uint32) bool {
	return c >= surrHighFirst && c <= surrLast
}

// CombineSurrogatesUnchecked returns the supplementary codepoint encoded by
// the pair hi, lo. The caller checks IsHighSurrogate(hi) and
// IsLowSurrogate(lo); for such input the result is valid and above MaxBMP.
func CombineSurrogatesUnchecked(hi, lo uint32) uint32 {
	debugAssert(IsHighSurrogate(hi) && IsLowSurrogate(lo), "CombineSurrogatesUnchecked: not a surrogate pair")
	return surrSelf + (hi-surrHighFirst)<<10 + (lo - surrLowFirst)
}

// SplitSurrogatesUnchecked is the inverse of CombineSurrogatesUnchecked.
// c must be in FirstFourByte..MaxCodepoint.
func SplitSurrogatesUnchecked(c uint32) (hi, lo uint32) {
	debugAssert(c >= surrSelf && c <= MaxCodepoint, "SplitSurrogatesUnchecked: codepoint not supplementary")
	c -= surrSelf
	return surrHighFirst + c>>10, surrLowFirst + c&0x3FF
}
