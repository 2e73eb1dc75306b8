package unicodec

import "math/bits"

// IsOneByteLead reports whether b is a complete ASCII sequence.
func IsOneByteLead(b byte) bool {
	return b&0x80 == 0
}

// IsTwoByteLead reports whether b starts a two byte sequence (110xxxxx).
func IsTwoByteLead(b byte) bool {
	return b&0xE0 == 0xC0
}

// IsContinuation reports whether b matches 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// IsControlByte reports whether b is an ASCII control or DEL.
func IsControlByte(b byte) bool {
	return b <= 0x1F || b == 0x7F
}

// IsTwoByteControl reports whether b0 b1 encode a C1 control (U+0080..U+009F).
func IsTwoByteControl(b0, b1 byte) bool {
	return b0 == 0xC2 && b1 >= 0x80 && b1 <= 0x9F
}

// LeadLen returns the sequence length announced by lead, its run of
// leading one bits. For a non-ASCII lead only 2..4 are legal; 1 (a
// continuation byte) and 5..8 are reported as bad.
func LeadLen(lead byte) (n int, bad bool) {
	if lead < 0x80 {
		return 1, false
	}
	n = bits.LeadingZeros8(^lead)
	return n, n < 2 || n > 4
}

// DecodeUTF8 decodes one codepoint from buf at *pos and advances *pos.
//
// On Success, read == utf8Len == the sequence length. On BadEncoding or
// Overflow, *pos moves exactly one byte forward, c is Replacement, read is
// 1 and utf8Len is ReplacementLength, so the caller can resynchronise on
// the next byte.
//
// *pos must be inside buf.
func (cd Codec) DecodeUTF8(buf []byte, pos *int) (c uint32, read, utf8Len int, res Result) {
	debugAssert(*pos >= 0 && *pos < len(buf), "DecodeUTF8: cursor outside buffer")

	lead := buf[*pos]
	if lead < 0x80 {
		*pos++
		return uint32(lead), 1, 1, Success
	}
	return cd.decodeMultibyte(buf, pos)
}

func (cd Codec) decodeMultibyte(buf []byte, pos *int) (uint32, int, int, Result) {
	i := *pos
	n, bad := LeadLen(buf[i])
	if bad {
		return replace(pos, BadEncoding)
	}
	if n > len(buf)-i {
		return replace(pos, Overflow)
	}

	var c uint32
	var ok bool
	if cd.variant == VariantBitParallel {
		c, ok = decodeBits(buf[i:i+n], n)
	} else {
		c, ok = decodeScalar(buf[i:i+n], n)
	}
	if !ok {
		return replace(pos, BadEncoding)
	}

	*pos = i + n
	return c, n, n, Success
}

// replace is the shared failure exit: single byte resync, fixed replacement length.
func replace(pos *int, res Result) (uint32, int, int, Result) {
	*pos++
	return Replacement, 1, ReplacementLength, res
}

// DecodeUTF8Unchecked decodes a sequence already known to be well formed
// and complete. No validation is done; malformed input yields garbage.
func (cd Codec) DecodeUTF8Unchecked(buf []byte, pos *int) (c uint32, n int) {
	i := *pos
	lead := buf[i]
	if lead < 0x80 {
		*pos++
		return uint32(lead), 1
	}

	n, _ = LeadLen(lead)
	debugAssert(n >= 2 && n <= 4, "DecodeUTF8Unchecked: bad lead byte")

	s := buf[i : i+n]
	if cd.variant == VariantBitParallel {
		c = extractBits(loadWord(s, n), decodeMaskLUT[n-2])
	} else {
		c = assembleScalar(s, n)
	}
	*pos = i + n
	return c, n
}

// assembleScalar concatenates the payload bits of an n byte sequence.
func assembleScalar(s []byte, n int) uint32 {
	switch n {
	case 2:
		_ = s[1]
		return uint32(s[0]&0x1F)<<6 | uint32(s[1]&0x3F)
	case 3:
		_ = s[2]
		return uint32(s[0]&0x0F)<<12 | uint32(s[1]&0x3F)<<6 | uint32(s[2]&0x3F)
	default:
		_ = s[3]
		return uint32(s[0]&0x07)<<18 | uint32(s[1]&0x3F)<<12 | uint32(s[2]&0x3F)<<6 | uint32(s[3]&0x3F)
	}
}

// decodeScalar assembles and validates an n byte sequence, 2 <= n <= 4.
func decodeScalar(s []byte, n int) (uint32, bool) {
	c := assembleScalar(s, n)
	switch n {
	case 2:
		return c, c >= FirstTwoByte && IsContinuation(s[1])
	case 3:
		return c, c >= FirstThreeByte && IsValidCodepoint(c) &&
			IsContinuation(s[1]) && IsContinuation(s[2])
	default:
		return c, c >= FirstFourByte && IsValidCodepoint(c) &&
			IsContinuation(s[1]) && IsContinuation(s[2]) && IsContinuation(s[3])
	}
}

// EncodeUTF8 writes c to dst at *pos and advances *pos by UTF8LenUnchecked(c).
// c must be a valid codepoint and dst must have room; neither is checked
// outside debug builds.
func (cd Codec) EncodeUTF8(c uint32, dst []byte, pos *int) {
	debugAssert(IsValidCodepoint(c), "EncodeUTF8: invalid codepoint")

	i := *pos
	n := UTF8LenUnchecked(c)
	if n == 1 {
		dst[i] = byte(c)
		*pos = i + 1
		return
	}

	d := dst[i : i+n]
	if cd.variant == VariantBitParallel {
		encodeBits(c, d, n)
	} else {
		encodeScalar(c, d, n)
	}
	*pos = i + n
}

func encodeScalar(c uint32, d []byte, n int) {
	switch n {
	case 2:
		_ = d[1]
		d[0] = byte(0xC0 | c>>6)
		d[1] = byte(0x80 | c&0x3F)
	case 3:
		_ = d[2]
		d[0] = byte(0xE0 | c>>12)
		d[1] = byte(0x80 | c>>6&0x3F)
		d[2] = byte(0x80 | c&0x3F)
	default:
		_ = d[3]
		d[0] = byte(0xF0 | c>>18)
		d[1] = byte(0x80 | c>>12&0x3F)
		d[2] = byte(0x80 | c>>6&0x3F)
		d[3] = byte(0x80 | c&0x3F)
	}
}

// WriteReplacement writes U+FFFD (EF BF BD) at *pos and advances it by 3.
func WriteReplacement(dst []byte, pos *int) {
	i := *pos
	d := dst[i : i+ReplacementLength]
	d[0] = 0xEF
	d[1] = 0xBF
	d[2] = 0xBD
	*pos = i + ReplacementLength
}

// DecodeUTF8 decodes with the Default codec.
func DecodeUTF8(buf []byte, pos *int) (c uint32, read, utf8Len int, res Result) {
	return defaultCodec.DecodeUTF8(buf, pos)
}

// DecodeUTF8Unchecked decodes with the Default codec.
func DecodeUTF8Unchecked(buf []byte, pos *int) (c uint32, n int) {
	return defaultCodec.DecodeUTF8Unchecked(buf, pos)
}

// EncodeUTF8 encodes with the Default codec.
func EncodeUTF8(c uint32, dst []byte, pos *int) {
	defaultCodec.EncodeUTF8(c, dst, pos)
}
