// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressBlockFast decompresses a block whose original size is known
// exactly: it fills all of dst and returns the number of src bytes consumed,
// so src may carry further data after the block. It skips the validation
// done by DecompressBlock and keeps only cheap per-sequence guards; feeding
// it a corrupted block or a wrong dst size yields garbage output or a
// best-effort error, never a write outside dst. Use it on trusted blocks
// only.
func DecompressBlockFast(src, dst []byte) (int, error) {
	return decodeBlockFast(src, dst, 0, nil)
}

// DecompressBlockFastUsingDict is DecompressBlockFast with an external
// dictionary, treated as if it immediately preceded dst[0].
func DecompressBlockFastUsingDict(src, dst, dict []byte) (int, error) {
	return decodeBlockFast(src, dst, 0, dict)
}

// decodeBlockFast fills dst[start:] and returns the src bytes consumed.
// dst[:start] is in-place history and dict the segment logically before
// dst[0]. Guards catch gross truncation and reach violations; they are not a
// validation pass.
func decodeBlockFast(src, dst []byte, start int, dict []byte) (int, error) {
	var (
		inPos  int
		outPos = start
	)

	for {
		if inPos >= len(src) {
			return 0, ErrUnexpectedEOF
		}
		token := src[inPos]
		inPos++

		litLen := int(token >> mlBits)
		if litLen == runMask {
			var err error
			litLen, err = readExtendedLength(src, &inPos, litLen)
			if err != nil {
				return 0, ErrUnexpectedEOF
			}
		}
		if inPos+litLen > len(src) || outPos+litLen > len(dst) {
			return 0, ErrUnexpectedEOF
		}
		copy(dst[outPos:outPos+litLen], src[inPos:inPos+litLen])
		inPos += litLen
		outPos += litLen

		// The block is done once dst is filled; its final sequence carries
		// literals only.
		if outPos >= len(dst) {
			return inPos, nil
		}

		if inPos+2 > len(src) {
			return 0, ErrUnexpectedEOF
		}
		dist := int(src[inPos]) | int(src[inPos+1])<<8
		inPos += 2
		if dist == 0 {
			return 0, ErrLookBehindUnderrun
		}

		matchLen := int(token&mlMask) + minMatch
		if matchLen == mlMask+minMatch {
			var err error
			matchLen, err = readExtendedLength(src, &inPos, matchLen)
			if err != nil {
				return 0, ErrUnexpectedEOF
			}
		}

		if dist > outPos {
			if err := copyDictRef(dst, &outPos, dict, dist, matchLen); err != nil {
				return 0, err
			}
		} else {
			if err := copyBackRef(dst, outPos, dist, matchLen); err != nil {
				return 0, err
			}
			outPos += matchLen
		}

		if outPos >= len(dst) {
			return inPos, nil
		}
	}
}
