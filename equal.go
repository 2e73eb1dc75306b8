package unicodec

import "unsafe"

// unsafeStringToBytes converts string to []byte without allocation.
// The result must never be written to.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// EqualBytes compares the first n bytes of a and b. It is false when either
// slice is shorter than n.
func EqualBytes(a, b []byte, n int) bool {
	if n < 0 || len(a) < n || len(b) < n {
		return false
	}
	if n == 0 {
		return true
	}

	// Word-size comparison when possible (8 bytes at a time on 64-bit)
	const wordSize = int(unsafe.Sizeof(uintptr(0)))

	words := n / wordSize
	for i := 0; i < words; i++ {
		aWord := *(*uintptr)(unsafe.Pointer(&a[i*wordSize]))
		bWord := *(*uintptr)(unsafe.Pointer(&b[i*wordSize]))
		if aWord != bWord {
			return false
		}
	}

	for i := words * wordSize; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HasLiteralAt reports whether buf holds lit starting at pos.
func HasLiteralAt(buf []byte, pos int, lit string) bool {
	if pos < 0 || pos > len(buf) {
		return false
	}
	return EqualBytes(buf[pos:], unsafeStringToBytes(lit), len(lit))
}
