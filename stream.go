// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// Compressor carries match-finder state across blocks so that later blocks
// can reference up to 64 KB of earlier input. The zero value is ready to use.
//
// The window is a borrowed view: bytes handed to CompressContinue (and any
// loaded dictionary) must stay valid and unmodified at their original
// location while they can still be referenced. SaveDict and the ring buffer
// rules in the package documentation are the two sanctioned ways to reuse
// source buffers.
//
// A Compressor must not be used concurrently.
type Compressor struct {
	table  matchTable
	window []byte // newest tracked history, at most maxWindowSize bytes
	tip    uint32 // virtual position one past the newest tracked byte
	failed bool   // a failed block leaves offsets unsynchronized with the decoder
}

// Reset returns the stream to its initial state, dropping all history.
func (c *Compressor) Reset() {
	c.table = matchTable{}
	c.window = nil
	c.tip = 0
	c.failed = false
}

// LoadDict resets the stream and primes it with a dictionary, so following
// blocks can reference its trailing bytes (at most 64 KB are kept). The dict
// buffer must stay unmodified while the stream uses it. A dictionary shorter
// than 4 bytes cannot hold a hashable sequence and just resets the stream.
// Returns the number of dictionary bytes retained.
func (c *Compressor) LoadDict(dict []byte) int {
	c.Reset()
	if len(dict) < minMatch {
		return 0
	}
	if len(dict) > maxWindowSize {
		dict = dict[len(dict)-maxWindowSize:]
	}

	c.window = dict
	c.tip = uint32(len(dict)) //nolint:gosec // G115: dict is clamped to maxWindowSize
	for i := 0; i+minMatch <= len(dict); i += 3 {
		c.table[hashSeq(binary.LittleEndian.Uint32(dict[i:]))] = uint32(i) //nolint:gosec // G115: dict is clamped to maxWindowSize
	}

	return len(dict)
}

// CompressBlock compresses src as one independent block, using this
// Compressor as scratch state instead of the package-level pool. The stream
// is reset first; it holds no reusable history afterwards, so call Reset or
// LoadDict before switching to CompressContinue.
func (c *Compressor) CompressBlock(src, dst []byte, acceleration int) (int, error) {
	c.Reset()
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	return compressSequences(dst, src, nil, 0, &c.table, normalizeAcceleration(acceleration))
}

// CompressContinue compresses src as the next block of the stream. Matches
// may reach up to 64 KB back into previously compressed input and the loaded
// dictionary, so the resulting block only decompresses against the same
// history (Decompressor, or DecompressBlockUsingDict after a first block).
// Returns the number of bytes written to dst.
//
// On failure the stream state no longer matches what a decoder would hold,
// so every later call reports ErrStreamInvalid until Reset or LoadDict.
func (c *Compressor) CompressContinue(src, dst []byte, acceleration int) (int, error) {
	if c.failed {
		return 0, ErrStreamInvalid
	}
	if len(src) > MaxInputSize {
		c.failed = true
		return 0, ErrInputTooLarge
	}

	c.renormalize(len(src))

	// Ring reuse may have written src over part of the window; only the
	// suffix beyond src still holds the bytes a decoder would have.
	c.window = overlapClip(c.window, src)
	if len(c.window) < minMatch && !continuesSlice(c.window, src) {
		c.window = nil
	}

	n, err := compressSequences(dst, src, c.window, c.tip, &c.table, normalizeAcceleration(acceleration))
	if err != nil {
		c.failed = true
		return 0, err
	}

	// Rebase the window onto src unconditionally, mirroring the decoder's
	// history update: a detached chunk (even an empty one) starts a new
	// segment and the decoder forgets everything before it.
	if continuesSlice(c.window, src) {
		c.window = c.window[:len(c.window)+len(src)]
	} else {
		c.window = src
	}
	if len(c.window) > maxWindowSize {
		c.window = c.window[len(c.window)-maxWindowSize:]
	}
	c.tip += uint32(len(src)) //nolint:gosec // G115: src length is bounded by MaxInputSize

	return n, nil
}

// renormalize rebases virtual positions before tip+srcLen could overflow
// uint32. Entries that fall behind the rebased window collapse to zero and
// are rejected by the window range check during candidate validation.
func (c *Compressor) renormalize(srcLen int) {
	if uint64(c.tip)+uint64(srcLen) <= 1<<31 { //nolint:gosec // G115: srcLen is non-negative
		return
	}

	delta := c.tip - maxWindowSize
	for i := range c.table {
		if c.table[i] <= delta {
			c.table[i] = 0
		} else {
			c.table[i] -= delta
		}
	}
	c.tip = maxWindowSize
	if len(c.window) > maxWindowSize {
		c.window = c.window[len(c.window)-maxWindowSize:]
	}
}

// SaveDict copies the stream's referenceable history (at most 64 KB, and at
// most len(buf) bytes) into buf and rebases the stream onto that copy, so the
// original source buffers may be reused or overwritten. buf may overlap the
// current window; the copy is front-anchored like memmove. Returns the number
// of bytes saved.
func (c *Compressor) SaveDict(buf []byte) int {
	n := min(len(c.window), len(buf))
	if n == 0 {
		c.window = nil
		return 0
	}

	copy(buf, c.window[len(c.window)-n:])
	c.window = buf[:n]

	return n
}
