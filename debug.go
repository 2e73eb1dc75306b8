package unicodec

// debugAssert panics when cond is false in builds tagged unicodec_debug.
// Release builds compile it away and rely on slice bounds checks.
func debugAssert(cond bool, msg string) {
	if debugEnabled && !cond {
		panic("unicodec: " + msg)
	}
}
