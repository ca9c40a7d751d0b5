// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrEmptyInput is returned when decompressing an empty source slice.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder needs bytes past the end of src:
	// a truncated token, length extension, literal run or offset, or a block
	// followed by trailing bytes it cannot account for.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when decoding would write past the end of dst.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned for a zero offset or a match reaching
	// before the start of the addressable history (output plus dictionary).
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrUnexpectedEOF is returned by the fast decoders when they detect a
	// truncated block. Detection there is best effort, not a validation pass.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrInputTooLarge is returned when a source exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrDstTooSmall is returned when the compressed form of src does not fit dst.
	// A destination of CompressBlockBound(len(src)) bytes always fits.
	ErrDstTooSmall = errors.New("destination buffer too small")
	// ErrStreamInvalid is returned by CompressContinue after an earlier call
	// failed and left the stream state unusable. Reset or LoadDict recovers.
	// Callers can use errors.Is(err, lz4.ErrStreamInvalid).
	ErrStreamInvalid = errors.New("compression stream in invalid state")
)
