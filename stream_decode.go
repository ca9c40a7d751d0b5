// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecodeRingBufferSize returns the smallest decoder ring buffer that works
// with any producer for blocks of at most maxBlockSize bytes: the full 64 KB
// match window, a small synchronization margin, and room for one block.
// Smaller rings also work when both sides follow the same wrap schedule; see
// the ring buffer notes in the package documentation.
func DecodeRingBufferSize(maxBlockSize int) int {
	return maxWindowSize + 8 + max(maxBlockSize, 0)
}

// Decompressor tracks decoded output across blocks so matches can reach up
// to 64 KB back into earlier blocks and an optional dictionary. The zero
// value is ready to use.
//
// History is borrowed, never copied: the dictionary and the dst buffers of
// earlier DecompressContinue calls must stay valid and unmodified while the
// stream can still reference them. Decoding a block into a buffer that does
// not directly continue the previous one demotes the previous bytes to a
// detached segment and drops anything older, which is what makes the ring
// buffer patterns work.
//
// A Decompressor must not be used concurrently. A failed block does not
// corrupt the stream; the call can be retried with a bigger dst.
type Decompressor struct {
	prefix  []byte // decoded bytes directly preceding the next dst
	extDict []byte // older detached segment, logically before prefix
}

// Reset restarts the stream. A non-empty dict seeds the history, so the
// first blocks can reference its trailing bytes just like earlier output;
// nil is a plain reset.
func (d *Decompressor) Reset(dict []byte) {
	d.prefix = dict
	d.extDict = nil
}

// DecompressContinue decompresses the next block of a stream into dst,
// resolving matches against tracked history, and returns the number of
// bytes written. The compressing side must have produced the blocks in the
// same order with CompressContinue.
func (d *Decompressor) DecompressContinue(src, dst []byte) (int, error) {
	if continuesSlice(d.prefix, dst) {
		// dst extends the previous block's buffer: decode in place with the
		// prefix ahead of it and keep any older segment addressable.
		joined := d.prefix[: len(d.prefix)+len(dst)]
		n, err := decodeBlock(src, joined, len(d.prefix), d.extDict, len(dst), false)
		if err != nil {
			return 0, err
		}

		d.prefix = joined[:len(d.prefix)+n]
		return n, nil
	}

	n, err := decodeBlock(src, dst, 0, d.prefix, len(dst), false)
	if err != nil {
		return 0, err
	}

	d.extDict = d.prefix
	d.prefix = dst[:n]
	return n, nil
}

// DecompressFastContinue is the trusted-input variant of DecompressContinue:
// len(dst) must be the block's exact decoded size. Returns the number of src
// bytes consumed. See DecompressBlockFast for what "trusted" relaxes.
func (d *Decompressor) DecompressFastContinue(src, dst []byte) (int, error) {
	if continuesSlice(d.prefix, dst) {
		joined := d.prefix[: len(d.prefix)+len(dst)]
		read, err := decodeBlockFast(src, joined, len(d.prefix), d.extDict)
		if err != nil {
			return 0, err
		}

		d.prefix = joined
		return read, nil
	}

	read, err := decodeBlockFast(src, dst, 0, d.prefix)
	if err != nil {
		return 0, err
	}

	d.extDict = d.prefix
	d.prefix = dst
	return read, nil
}
