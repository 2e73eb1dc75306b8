package unicodec

import (
	"sync"
	"testing"
)

func TestScratchPool(t *testing.T) {
	// Acquire a scratch buffer from the pool
	sc := getScratch()

	// Fill it
	sc.buf = append(sc.buf, "some output"...)

	// Reset the buffer
	sc.reset()

	// Validate that the buffer is reset but keeps its storage
	if len(sc.buf) != 0 || cap(sc.buf) < scratchSize {
		t.Errorf("scratch was not properly reset: len %d cap %d", len(sc.buf), cap(sc.buf))
	}

	putScratch(sc)
}

func TestScratchPoolConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	poolSize := 1000

	// Simulate concurrent usage of the scratch pool
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sc := getScratch()
			if len(sc.buf) != 0 {
				t.Errorf("pooled scratch not empty: %d bytes", len(sc.buf))
			}
			sc.buf = append(sc.buf, byte(i))
			putScratch(sc)
		}(i)
	}

	wg.Wait()

	if sc := getScratch(); cap(sc.buf) < scratchSize || len(sc.buf) != 0 {
		t.Errorf("scratch buffer has len %d cap %d, expected empty with cap >= %d", len(sc.buf), cap(sc.buf), scratchSize)
	}
}

func TestScratchPoolDropsOversized(t *testing.T) {
	sc := &scratch{buf: make([]byte, 10, scratchMaxPooled+1)}
	putScratch(sc)

	// dropped buffers are not reset
	if len(sc.buf) != 10 {
		t.Errorf("oversized scratch was reset and pooled")
	}
}
