// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

// DecompressBlock decompresses a single LZ4 block from src into dst and
// returns the number of bytes written. Every sequence is validated against
// both buffer bounds, so src may be untrusted. src must hold exactly one
// whole block: a truncated block fails with ErrInputOverrun, and so do
// trailing bytes after the block's final literals.
func DecompressBlock(src, dst []byte) (int, error) {
	return decodeBlock(src, dst, 0, nil, len(dst), false)
}

// DecompressBlockUsingDict is DecompressBlock with an external dictionary:
// matches may reach up to 64 KB back into dict's trailing bytes, which are
// treated as if they immediately preceded dst[0]. Use the same dictionary
// the compressing side loaded.
func DecompressBlockUsingDict(src, dst, dict []byte) (int, error) {
	return decodeBlock(src, dst, 0, dict, len(dst), false)
}

// DecompressBlockPartial decompresses at least target bytes of the block
// into dst when the block holds that many, and stops early instead of
// failing when dst fills up. The sequence in flight is finished before
// stopping, so up to len(dst) bytes may be produced; the result is always a
// prefix of the full decode. A target beyond len(dst) is clamped.
func DecompressBlockPartial(src, dst []byte, target int) (int, error) {
	target = max(target, 0)
	target = min(target, len(dst))

	return decodeBlock(src, dst, 0, nil, target, true)
}

// decodeBlock is the validating sequence decoder behind every safe entry
// point. It writes to dst[start:], with dst[:start] serving as in-place
// history (the streaming prefix) and dict as the history segment logically
// preceding dst[0]. target counts from start; in partial mode decoding stops
// once target bytes came out (finishing the sequence in flight) or dst is
// full. Returns the number of bytes written past start.
func decodeBlock(src, dst []byte, start int, dict []byte, target int, partial bool) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if partial && target == 0 {
		return 0, nil
	}

	var (
		inPos  int
		outPos = start
		goal   = start + target
	)

	for {
		token, err := readCompressedByte(src, &inPos)
		if err != nil {
			return 0, err
		}

		litLen := int(token >> mlBits)
		if litLen == runMask {
			litLen, err = readExtendedLength(src, &inPos, litLen)
			if err != nil {
				return 0, err
			}
		}

		// The final sequence of a block is literals only and lines up with
		// the end of src exactly; anything else past it is malformed.
		isFinal := inPos+litLen == len(src)

		// A run announcing more literals than src holds is malformed on the
		// input side, whatever room dst has left.
		if inPos+litLen > len(src) {
			return 0, ErrInputOverrun
		}

		copyLen := litLen
		if outPos+copyLen > len(dst) {
			if !partial {
				return 0, ErrOutputOverrun
			}
			copyLen = len(dst) - outPos
		}
		copy(dst[outPos:outPos+copyLen], src[inPos:inPos+copyLen])
		inPos += copyLen
		outPos += copyLen

		if isFinal || (partial && outPos == len(dst)) {
			return outPos - start, nil
		}

		dist, err := readCompressedLE16(src, &inPos)
		if err != nil {
			return 0, err
		}
		if dist == 0 {
			return 0, ErrLookBehindUnderrun
		}

		matchLen := int(token&mlMask) + minMatch
		if matchLen == mlMask+minMatch {
			matchLen, err = readExtendedLength(src, &inPos, matchLen)
			if err != nil {
				return 0, err
			}
		}

		if partial && outPos+matchLen > len(dst) {
			matchLen = len(dst) - outPos
		}

		if int(dist) > outPos {
			// The match starts in the dictionary segment.
			if err := copyDictRef(dst, &outPos, dict, int(dist), matchLen); err != nil {
				return 0, err
			}
		} else {
			if err := copyBackRef(dst, outPos, int(dist), matchLen); err != nil {
				return 0, err
			}
			outPos += matchLen
		}

		if partial && outPos >= goal {
			return outPos - start, nil
		}
	}
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readExtendedLength accumulates length-extension bytes onto base: every 255
// byte adds 255, and the first byte below 255 closes the length.
func readExtendedLength(src []byte, inPos *int, base int) (int, error) {
	for {
		b, err := readCompressedByte(src, inPos)
		if err != nil {
			return 0, err
		}

		base += int(b)
		if base < 0 {
			// Guards run-length reconstruction math against absurd extension chains.
			return 0, ErrInputOverrun
		}
		if b != 255 {
			return base, nil
		}
	}
}
