package lz4

import "sync"

// compressorPool recycles Compressor state for the stateless entry points,
// so they do not allocate a fresh hash table per call.
var compressorPool = sync.Pool{
	New: func() any {
		return &Compressor{}
	},
}

// acquireCompressor acquires a Compressor from the pool. Callers reset it
// through the entry point they use.
func acquireCompressor() *Compressor {
	return compressorPool.Get().(*Compressor)
}

// releaseCompressor releases a Compressor to the pool.
func releaseCompressor(c *Compressor) {
	if c == nil {
		return
	}

	c.window = nil
	compressorPool.Put(c)
}
