// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements LZ4 block compression and decompression in pure Go
(LZ4_compress_default/LZ4_decompress_safe–compatible).

A block is a run of token-prefixed sequences: literals, then a 16-bit
little-endian offset (1..65535) and a match of at least 4 bytes copied from
up to 64 KB back. Blocks carry no header, checksum or length fields, so the
caller transports the sizes; this is the raw block format as used inside
frames, archives and databases, not the framed .lz4 file format.

The codec is MIT-licensed and implemented from the format description and
permissive references. Main implementation reference: lz4/lz4 (BSD 2-Clause).

# Compress

Size dst with CompressBlockBound so compression cannot fail; higher
acceleration trades ratio for speed:

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst)
	n, err := lz4.CompressBlockFast(data, dst, 8)

To fill a fixed-size destination with as much of the source as fits
(n bytes written, consumed source bytes):

	n, consumed, err := lz4.CompressDestSize(data, dst)

# Decompress

The decompressed size is not recorded in a block, the caller supplies it:

	out := make([]byte, decompressedLen)
	n, err := lz4.DecompressBlock(compressed, out)

DecompressBlock validates everything and accepts untrusted input. When the
exact output size is known and the input is trusted, DecompressBlockFast
skips validation and returns the input bytes consumed (e.g. for back-to-back
compressed blocks):

	nRead, err := lz4.DecompressBlockFast(compressed, out)
	// advance: compressed = compressed[nRead:]

DecompressBlockPartial stops after a requested prefix instead of decoding the
whole block.

# Streaming

Compressor and Decompressor chain blocks so each one can reference up to
64 KB of previous input, which helps small chunks a lot. Both sides must see
the same block order, and an optional dictionary must be loaded on both ends:

	var c lz4.Compressor
	c.LoadDict(dict)
	n, err := c.CompressContinue(chunk, dst, 1)

	var d lz4.Decompressor
	d.Reset(dict)
	n, err := d.DecompressContinue(block, out)

Streamed history is referenced in place: source chunks (for Compressor) and
decoded outputs (for Decompressor) must stay unmodified at their original
locations while within the 64 KB window. Compressor.SaveDict copies the
window out to break that dependency before reusing source buffers.

# Ring buffers

Both sides may run over ring buffers, wrapping to the start instead of
growing forever. Any of these layouts keeps references resolvable:

  - Same-size rings on both sides, wrapping at the same block boundaries.
  - A decoding ring of at least DecodeRingBufferSize(maxBlockSize) bytes,
    with any producer layout.
  - Decoding straight into a destination at least 64 KB + maxBlockSize into
    which blocks are laid out back to back.

Within one ring the producer may overwrite bytes that left the 64 KB window;
Compressor notices the overlap and drops only the clobbered part of its
history.
*/
package lz4
