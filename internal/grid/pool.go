package grid

import (
	"strings"
	"sync"
)

// maxRetainBuilder caps the capacity of builders returned to the pool so
// one oversized render does not pin its buffer for the process lifetime.
const maxRetainBuilder = 1 << 16

// builderPool reuses render output builders across calls.
var builderPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// acquireBuilder gets a reset builder from the pool.
func acquireBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// releaseBuilder returns a builder to the pool, dropping oversized ones.
func releaseBuilder(b *strings.Builder) {
	if b.Cap() > maxRetainBuilder {
		return
	}
	builderPool.Put(b)
}
