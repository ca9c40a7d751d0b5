// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// LZ4 block format constants: token layout, sequence end rules, and match bounds.

// MaxInputSize is the largest source length accepted by the compression
// functions. Beyond it the worst-case output size no longer fits 32 bits.
const MaxInputSize = 0x7E000000

// Token layout. The high nibble holds the literal run length and the low
// nibble holds matchLength-minMatch; a nibble of 15 continues in extension
// bytes, each adding 0..255, where the first byte below 255 ends the length.
const (
	mlBits  = 4                // match length bits in the token
	mlMask  = (1 << mlBits) - 1 // low nibble cap, switches to extension bytes
	runMask = 15                // high nibble cap, switches to extension bytes
)

// Sequence end rules. A block always ends with a literal-only sequence of at
// least lastLiterals bytes, and no match may start closer than mfLimit bytes
// to the end. Inputs shorter than minSrcForMatch are emitted as one literal run.
const (
	minMatch       = 4
	lastLiterals   = 5
	mfLimit        = 12
	minSrcForMatch = mfLimit + 1
)

// Match offsets are 16-bit little-endian; zero is invalid.
const maxDistance = 65535

// Streamed blocks may reference at most this much earlier history.
const maxWindowSize = 64 << 10

// Hash table parameters for the greedy match finder.
const (
	memoryUsage   = 14                   // table budget: 1<<memoryUsage bytes
	hashLog       = memoryUsage - 2      // 4-byte entries
	hashTableSize = 1 << hashLog
	hashMul       = 2654435761 // golden ratio multiplier from the reference implementation
)

// Acceleration bounds for CompressBlockFast.
const (
	accelerationDefault = 1
	accelerationMax     = 65537
	skipTrigger         = 6 // probe stride grows by one every 1<<skipTrigger misses
)
