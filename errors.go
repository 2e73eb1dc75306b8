package unicodec

import "strconv"

// Sentinels for errors.Is. Any *Error with the same Result matches.
var (
	ErrBadEncoding = &Error{Result: BadEncoding}
	ErrOverflow    = &Error{Result: Overflow}
)

// Error reports a malformed unit found by a buffer-level operation.
type Error struct {
	Op     string // operation, e.g. "validate"
	Offset int    // byte offset of the first malformed unit
	Result Result
}

// Error implements the error interface
func (e *Error) Error() string {
	b := make([]byte, 0, 48)
	b = append(b, "unicodec: "...)
	if e.Op != "" {
		b = append(b, e.Op...)
		b = append(b, " at offset "...)
		b = strconv.AppendInt(b, int64(e.Offset), 10)
		b = append(b, ": "...)
	}
	b = append(b, e.Result.String()...)
	return string(b)
}

// Is reports whether target is an *Error with the same Result.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Result == t.Result
	}
	return false
}
