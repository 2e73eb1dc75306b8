package unicodec

import "golang.org/x/sys/cpu"

// Variant selects which implementation of the UTF-8 codec runs.
// Both variants produce identical results on every input.
type Variant uint8

const (
	// VariantScalar decodes and encodes with explicit shift/mask per length.
	VariantScalar Variant = iota
	// VariantBitParallel packs a whole sequence into one uint32 and uses a
	// single bit extract (decode) or deposit (encode) driven by
	// length-indexed mask tables.
	VariantBitParallel
)

func (v Variant) String() string {
	switch v {
	case VariantScalar:
		return "scalar"
	case VariantBitParallel:
		return "bit-parallel"
	}
	return "unknown"
}

// DetectVariant picks the bit-parallel variant on CPUs with BMI2 wide
// bit-manipulation instructions, scalar otherwise.
func DetectVariant() Variant {
	if cpu.X86.HasBMI2 {
		return VariantBitParallel
	}
	return VariantScalar
}

// Resolved once; never written afterwards.
var defaultCodec = Codec{variant: DetectVariant()}

// Codec is a UTF-8 codec bound to one Variant. It holds no other state:
// the zero value is a scalar codec, and values can be copied and shared
// between goroutines freely.
type Codec struct {
	variant Variant
}

// NewCodec returns a codec for v. Unknown variants fall back to scalar.
func NewCodec(v Variant) Codec {
	if v > VariantBitParallel {
		v = VariantScalar
	}
	return Codec{variant: v}
}

// Default returns the codec chosen by DetectVariant at startup.
func Default() Codec {
	return defaultCodec
}

// Variant returns the implementation c dispatches to.
func (c Codec) Variant() Variant {
	return c.variant
}
