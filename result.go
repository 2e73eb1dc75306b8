package unicodec

// Result is the outcome of a single decode call.
type Result uint8

const (
	// Success means a full unit was decoded and all outputs are meaningful.
	Success Result = iota
	// BadEncoding means the input is not valid for the codec's grammar:
	// bad lead or trailing byte, overlong form, surrogate or out of range
	// codepoint, invalid hex digit.
	BadEncoding
	// Overflow means the buffer ended before the unit could be decoded.
	Overflow
)

var resultNames = [...]string{
	Success:     "success",
	BadEncoding: "bad_encoding",
	Overflow:    "overflow",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Err converts r into an *Error for the operation op at offset.
// It returns nil for Success.
func (r Result) Err(op string, offset int) error {
	if r == Success {
		return nil
	}
	return &Error{Op: op, Offset: offset, Result: r}
}
