//go:build !unicodec_debug

package unicodec

const debugEnabled = false
