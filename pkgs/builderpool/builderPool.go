package builderpool

import (
	"strings"
	"sync"
)

// Builders that grew beyond this are left to the garbage collector instead of
// being pooled.
const maxPooledCap = 64 << 10

var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

func Get() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

// GetWithSize returns a builder that can hold at least size bytes without
// growing.
func GetWithSize(size int) *strings.Builder {
	sb := Get()
	if size > 0 {
		sb.Grow(size)
	}
	return sb
}

func Put(bufs ...*strings.Builder) {
	for _, buf := range bufs {
		if buf == nil || buf.Cap() > maxPooledCap {
			continue
		}
		buf.Reset()
		builderPool.Put(buf)
	}
}
