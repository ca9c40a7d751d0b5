// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// CompressBlockBound returns the worst-case compressed size for a source of
// n bytes, or 0 when n is negative or exceeds MaxInputSize. A destination of
// this size never makes the compressor fail.
func CompressBlockBound(n int) int {
	if n < 0 || n > MaxInputSize {
		return 0
	}
	return n + n/255 + 16
}

// normalizeAcceleration clamps the acceleration factor to its valid range.
// Values below 1 mean the default; 1 favors ratio, larger values trade ratio
// for speed by probing fewer positions.
func normalizeAcceleration(acceleration int) int {
	if acceleration < 1 {
		return accelerationDefault
	}
	return min(acceleration, accelerationMax)
}

// CompressBlock compresses src into dst as a single LZ4 block and returns the
// number of bytes written. The block is self-contained: it decompresses
// without any dictionary or stream state. An empty src still produces a
// 1-byte block. Fails with ErrDstTooSmall when dst cannot hold the result;
// size dst with CompressBlockBound to rule that out.
func CompressBlock(src, dst []byte) (int, error) {
	return CompressBlockFast(src, dst, accelerationDefault)
}

// CompressBlockFast is CompressBlock with an explicit acceleration factor.
// Each step roughly trades a few percent of ratio for proportionally faster
// compression; acceleration 1 is identical to CompressBlock.
func CompressBlockFast(src, dst []byte, acceleration int) (int, error) {
	c := acquireCompressor()
	defer releaseCompressor(c)

	return c.CompressBlock(src, dst, acceleration)
}
