package unicodec

import "math/bits"

// extractBits gathers the bits of x selected by mask into the low bits of
// the result, preserving order (PEXT semantics). It walks mask one run of
// contiguous ones at a time, so UTF-8 masks cost at most four steps.
func extractBits(x, mask uint32) uint32 {
	var out uint32
	var at int
	for mask != 0 {
		lo := bits.TrailingZeros32(mask)
		n := bits.TrailingZeros32(^(mask >> lo))
		run := uint32(1)<<n - 1

		out |= (x >> lo & run) << at
		at += n
		mask &^= run << lo
	}
	return out
}

// depositBits scatters the low bits of x into the positions selected by
// mask, lowest first (PDEP semantics).
func depositBits(x, mask uint32) uint32 {
	var out uint32
	for mask != 0 {
		lo := bits.TrailingZeros32(mask)
		n := bits.TrailingZeros32(^(mask >> lo))
		run := uint32(1)<<n - 1

		out |= (x & run) << lo
		x >>= n
		mask &^= run << lo
	}
	return out
}
