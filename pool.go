package unicodec

import "sync"

const (
	scratchSize = 4096
	// larger buffers are dropped instead of pooled so one huge input does
	// not pin memory
	scratchMaxPooled = 64 << 10
)

// scratch is an output buffer reused across EscapeString/UnescapeString calls.
type scratch struct {
	buf []byte
}

var scratchPool = sync.Pool{
	New: func() interface{} {
		return &scratch{buf: make([]byte, 0, scratchSize)}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(s *scratch) {
	if cap(s.buf) > scratchMaxPooled {
		return
	}
	s.reset()
	scratchPool.Put(s)
}

// reset clears the buffer for reuse without allocating
func (s *scratch) reset() {
	s.buf = s.buf[:0]
}
