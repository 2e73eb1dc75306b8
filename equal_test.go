package unicodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsafeStringToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "Non-empty string",
			input:    "hello",
			expected: []byte{'h', 'e', 'l', 'l', 'o'},
		},
		{
			name:     "Multibyte string",
			input:    "h\xC3\xA9",
			expected: []byte{'h', 0xC3, 0xA9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := unsafeStringToBytes(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEqualBytes(t *testing.T) {
	tests := []struct {
		name     string
		a        []byte
		b        []byte
		length   int
		expected bool
	}{
		{
			name:     "Equal slices",
			a:        []byte{'a', 'b', 'c', 'd'},
			b:        []byte{'a', 'b', 'c', 'd'},
			length:   4,
			expected: true,
		},
		{
			name:     "Different slices",
			a:        []byte{'a', 'b', 'c', 'd'},
			b:        []byte{'a', 'b', 'x', 'd'},
			length:   4,
			expected: false,
		},
		{
			name:     "Partial match",
			a:        []byte{'a', 'b', 'c', 'd'},
			b:        []byte{'a', 'b', 'x', 'd'},
			length:   2,
			expected: true,
		},
		{
			name:     "Empty slices",
			a:        []byte{},
			b:        []byte{},
			length:   0,
			expected: true,
		},
		{
			name:     "Different lengths",
			a:        []byte{'a', 'b', 'c'},
			b:        []byte{'a', 'b', 'c', 'd'},
			length:   3,
			expected: true,
		},
		{
			name:     "Length past the shorter slice",
			a:        []byte{'a', 'b', 'c'},
			b:        []byte{'a', 'b', 'c', 'd'},
			length:   4,
			expected: false,
		},
		{
			name:     "Negative length",
			a:        []byte{'a'},
			b:        []byte{'a'},
			length:   -1,
			expected: false,
		},
		{
			name:     "Word and tail equal",
			a:        []byte("0123456789abcdefXYZ"),
			b:        []byte("0123456789abcdefXYZ"),
			length:   19,
			expected: true,
		},
		{
			name:     "Differs inside second word",
			a:        []byte("0123456789abcdefXYZ"),
			b:        []byte("0123456789abcdeFXYZ"),
			length:   19,
			expected: false,
		},
		{
			name:     "Differs in tail",
			a:        []byte("0123456789abcdefXYZ"),
			b:        []byte("0123456789abcdefXYz"),
			length:   19,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EqualBytes(tt.a, tt.b, tt.length)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHasLiteralAt(t *testing.T) {
	buf := []byte("null, true")

	assert.True(t, HasLiteralAt(buf, 0, "null"))
	assert.True(t, HasLiteralAt(buf, 6, "true"))
	assert.True(t, HasLiteralAt(buf, 10, ""))
	assert.False(t, HasLiteralAt(buf, 1, "null"))
	assert.False(t, HasLiteralAt(buf, 7, "true"))
	assert.False(t, HasLiteralAt(buf, 11, ""))
	assert.False(t, HasLiteralAt(buf, -1, "n"))
}
