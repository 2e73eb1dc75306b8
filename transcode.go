package unicodec

import (
	"encoding/binary"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a Transcoder.
type Options struct {
	// Logger receives a debug entry per malformed unit. Nil uses Logger().
	Logger *zap.Logger
	// Variant selects the UTF-8 codec implementation.
	Variant Variant
	// LowercaseHex makes escapes use a-f instead of A-F.
	LowercaseHex bool
}

// DefaultOptions returns the detected codec variant, the package logger
// and uppercase escapes.
func DefaultOptions() Options {
	return Options{
		Variant: DetectVariant(),
	}
}

// Transcoder converts whole buffers between UTF-8 and ASCII with `\uXXXX`
// escapes. Malformed input never aborts a conversion; each bad unit is
// replaced by U+FFFD and counted. A Transcoder is immutable and safe for
// concurrent use.
type Transcoder struct {
	codec    Codec
	log      *zap.Logger
	lowerHex bool
}

// New creates a Transcoder with the given options.
func New(opts Options) *Transcoder {
	l := opts.Logger
	if l == nil {
		l = Logger()
	}
	return &Transcoder{
		codec:    NewCodec(opts.Variant),
		log:      l,
		lowerHex: opts.LowercaseHex,
	}
}

// NewWithDefaults creates a Transcoder with DefaultOptions.
func NewWithDefaults() *Transcoder {
	return New(DefaultOptions())
}

// Codec returns the UTF-8 codec t uses.
func (t *Transcoder) Codec() Codec {
	return t.codec
}

// Validate returns nil if src is well formed UTF-8, otherwise an *Error
// for the first malformed sequence.
func (t *Transcoder) Validate(src []byte) error {
	for pos := 0; pos < len(src); {
		pos = skipASCII(src, pos)
		if pos == len(src) {
			break
		}
		start := pos
		if _, _, _, res := t.codec.DecodeUTF8(src, &pos); res != Success {
			t.malformed("validate", start, res)
			return res.Err("validate", start)
		}
	}
	return nil
}

// CountRunes returns the number of codepoints in src, counting every
// malformed byte as one replacement, and how many of those there were.
func (t *Transcoder) CountRunes(src []byte) (n, bad int) {
	for pos := 0; pos < len(src); {
		next := skipASCII(src, pos)
		n += next - pos
		pos = next
		if pos == len(src) {
			break
		}
		if _, _, _, res := t.codec.DecodeUTF8(src, &pos); res != Success {
			bad++
		}
		n++
	}
	return n, bad
}

// AppendEscaped appends src to dst as 7-bit ASCII: ASCII bytes are copied,
// BMP codepoints become one escape and supplementary codepoints a
// surrogate pair of escapes. Malformed bytes become `\uFFFD`. It returns
// the extended buffer and the number of replacements.
//
// Only non-ASCII input is escaped; quoting ASCII is the caller's job.
func (t *Transcoder) AppendEscaped(dst, src []byte) ([]byte, int) {
	bad := 0
	for pos := 0; pos < len(src); {
		next := skipASCII(src, pos)
		dst = append(dst, src[pos:next]...)
		pos = next
		if pos == len(src) {
			break
		}

		start := pos
		c, _, _, res := t.codec.DecodeUTF8(src, &pos)
		if res != Success {
			bad++
			t.malformed("escape", start, res)
		}
		dst = t.appendEscape(dst, c)
	}
	return dst, bad
}

// AppendUnescaped appends src to dst as UTF-8, decoding every `\uXXXX`.
// A high surrogate escape directly followed by a low surrogate escape is
// combined into one codepoint. Unpaired surrogates, escapes with bad
// digits and truncated escapes become U+FFFD; after a bad digit decoding
// resumes on that digit. Bytes outside escapes are validated and copied,
// malformed ones replaced. It returns the extended buffer and the number
// of replacements.
func (t *Transcoder) AppendUnescaped(dst, src []byte) ([]byte, int) {
	bad := 0
	for pos := 0; pos < len(src); {
		start := pos
		b := src[pos]

		switch {
		case b == '\\' && HasEscapePrefix(src, pos):
			c, flags, res := DecodeEscape(src, &pos)
			if res != Success {
				bad++
				t.malformed("unescape", start, res)
				dst = appendReplacement(dst)
				continue
			}
			if flags.High || flags.Low {
				var ok bool
				if c, ok = pairEscape(src, &pos, c, flags); !ok {
					bad++
					t.malformed("unescape", start, BadEncoding)
					dst = appendReplacement(dst)
					continue
				}
			}
			dst = t.appendUTF8(dst, c)

		case b < 0x80:
			// copy the ASCII run up to the next escape candidate
			next := pos + 1
			for next < len(src) && src[next] < 0x80 && src[next] != '\\' {
				next++
			}
			dst = append(dst, src[pos:next]...)
			pos = next

		default:
			c, _, _, res := t.codec.DecodeUTF8(src, &pos)
			if res != Success {
				bad++
				t.malformed("unescape", start, res)
			}
			dst = t.appendUTF8(dst, c)
		}
	}
	return dst, bad
}

// pairEscape completes a surrogate escape decoded just before *pos. It
// consumes the following low escape when there is one; otherwise *pos is
// left alone and ok is false.
func pairEscape(src []byte, pos *int, hi uint32, flags SurrogateFlags) (uint32, bool) {
	if flags.Low || !HasEscape(src, *pos) {
		return Replacement, false
	}
	next := *pos
	lo, loFlags, res := DecodeEscape(src, &next)
	if res != Success || !loFlags.Low {
		return Replacement, false
	}
	*pos = next
	return CombineSurrogatesUnchecked(hi, lo), true
}

// EscapeString is AppendEscaped for strings. ASCII input is returned as
// is; otherwise the result costs one allocation.
func (t *Transcoder) EscapeString(s string) string {
	src := unsafeStringToBytes(s)
	if skipASCII(src, 0) == len(src) {
		return s
	}

	sc := getScratch()
	defer putScratch(sc)
	sc.buf, _ = t.AppendEscaped(sc.buf[:0], src)
	return string(sc.buf)
}

// UnescapeString is AppendUnescaped for strings. Input without escapes
// or non-ASCII bytes is returned as is; otherwise the result costs one
// allocation.
func (t *Transcoder) UnescapeString(s string) string {
	src := unsafeStringToBytes(s)
	if skipASCII(src, 0) == len(src) && !slices.Contains(src, '\\') {
		return s
	}

	sc := getScratch()
	defer putScratch(sc)
	sc.buf, _ = t.AppendUnescaped(sc.buf[:0], src)
	return string(sc.buf)
}

func (t *Transcoder) appendEscape(dst []byte, c uint32) []byte {
	if c > MaxBMP {
		hi, lo := SplitSurrogatesUnchecked(c)
		dst = t.appendEscape(dst, hi)
		return t.appendEscape(dst, lo)
	}

	n := len(dst)
	dst = slices.Grow(dst, EscapeLen)[:n+EscapeLen]
	if t.lowerHex {
		EncodeEscapeLower(c, dst, &n)
	} else {
		EncodeEscape(c, dst, &n)
	}
	return dst
}

func (t *Transcoder) appendUTF8(dst []byte, c uint32) []byte {
	n := len(dst)
	dst = slices.Grow(dst, 4)[:n+4]
	t.codec.EncodeUTF8(c, dst, &n)
	return dst[:n]
}

func appendReplacement(dst []byte) []byte {
	n := len(dst)
	dst = slices.Grow(dst, ReplacementLength)[:n+ReplacementLength]
	WriteReplacement(dst, &n)
	return dst
}

func (t *Transcoder) malformed(op string, offset int, res Result) {
	if ce := t.log.Check(zapcore.DebugLevel, "malformed input"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("offset", offset),
			zap.Stringer("result", res),
		)
	}
}

// skipASCII returns the index of the first byte at or after pos with the
// high bit set, or len(src). Eight bytes are tested per step.
func skipASCII(src []byte, pos int) int {
	for len(src)-pos >= 8 {
		if binary.LittleEndian.Uint64(src[pos:])&0x8080808080808080 != 0 {
			break
		}
		pos += 8
	}
	for pos < len(src) && src[pos] < 0x80 {
		pos++
	}
	return pos
}
