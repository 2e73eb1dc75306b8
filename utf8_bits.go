package unicodec

import "encoding/binary"

// Tables for the bit-parallel variant, indexed by sequence length - 2.
// A sequence is loaded big-endian into the top of a uint32, lead byte in
// bits 31..24. See https://nrk.neocities.org/articles/utf8-pext.
var (
	// payload bits of lead and trailing bytes
	decodeMaskLUT = [3]uint32{0x1F3F0000, 0x0F3F3F00, 0x073F3F3F}
	// smallest codepoint that may use the length
	firstCodepointLUT = [3]uint32{FirstTwoByte, FirstThreeByte, FirstFourByte}
	// top two bits of every trailing byte, and the 10 pattern they must hold
	trailMaskLUT  = [3]uint32{0x00C00000, 0x00C0C000, 0x00C0C0C0}
	trailCheckLUT = [3]uint32{0x00800000, 0x00808000, 0x00808080}

	// encode side works on a right-aligned word
	encodeMaskLUT   = [3]uint32{0x1F3F, 0x0F3F3F, 0x073F3F3F}
	encodePrefixLUT = [3]uint32{0xC080, 0xE08080, 0xF0808080}
)

// loadWord packs an n byte sequence into a uint32, lead byte highest.
func loadWord(s []byte, n int) uint32 {
	switch n {
	case 2:
		_ = s[1]
		return uint32(s[0])<<24 | uint32(s[1])<<16
	case 3:
		_ = s[2]
		return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8
	default:
		return binary.BigEndian.Uint32(s)
	}
}

// decodeBits is decodeScalar computed with one extract and one trailer
// check over the whole word.
func decodeBits(s []byte, n int) (uint32, bool) {
	k := n - 2
	w := loadWord(s, n)
	c := extractBits(w, decodeMaskLUT[k])

	overlong := c < firstCodepointLUT[k]
	badTrail := w&trailMaskLUT[k] != trailCheckLUT[k]
	if overlong || badTrail || !IsValidCodepoint(c) {
		return c, false
	}
	return c, true
}

// encodeBits is encodeScalar computed with one deposit and one prefix OR.
func encodeBits(c uint32, d []byte, n int) {
	k := n - 2
	w := depositBits(c, encodeMaskLUT[k]) | encodePrefixLUT[k]

	switch n {
	case 2:
		_ = d[1]
		d[0] = byte(w >> 8)
		d[1] = byte(w)
	case 3:
		_ = d[2]
		d[0] = byte(w >> 16)
		d[1] = byte(w >> 8)
		d[2] = byte(w)
	default:
		binary.BigEndian.PutUint32(d, w)
	}
}
