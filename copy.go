// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// copyBackRef copies length bytes from dst[outputPos-dist:outputPos-dist+length] to dst[outputPos:outputPos+length].
// If dist < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}

// copyDictRef copies a match that starts inside the dictionary segment logically
// preceding dst[0]. dist is measured back from *outPos; the part of the match
// that runs past the dictionary end continues at dst[0], where it may overlap
// the bytes being written.
func copyDictRef(dst []byte, outPos *int, dict []byte, dist, length int) error {
	back := dist - *outPos
	if back > len(dict) {
		return ErrLookBehindUnderrun
	}
	if *outPos+length > len(dst) {
		return ErrOutputOverrun
	}

	n := min(length, back)
	copy(dst[*outPos:*outPos+n], dict[len(dict)-back:len(dict)-back+n])
	*outPos += n

	length -= n
	if length == 0 {
		return nil
	}

	// The remainder wraps to dst[0]; from here it is a plain back-reference.
	if err := copyBackRef(dst, *outPos, *outPos, length); err != nil {
		return err
	}
	*outPos += length

	return nil
}
