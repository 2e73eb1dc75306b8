// Package unicodec validates, decodes and encodes UTF-8, combines and
// splits UTF-16 surrogate pairs, and converts `\uXXXX` escapes.
//
// The per-codepoint functions work on caller supplied buffers with an
// explicit cursor, never allocate and never log. A Codec picks between a
// scalar and a bit-parallel UTF-8 implementation; both give the same
// answer for every input. Transcoder builds buffer-level conversions on
// top of them.
package unicodec
