// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// CompressDestSize compresses as much of src as fits into a fixed-size dst.
// The parse stops before any sequence that could overflow dst and closes the
// block with a literal run trimmed to the remaining space, so dst always ends
// up holding one valid block that decompresses to exactly the consumed prefix
// of src. When everything fits, consumed equals len(src). Returns the bytes
// written to dst and the bytes of src consumed.
func CompressDestSize(src, dst []byte) (written, consumed int, err error) {
	if len(src) > MaxInputSize {
		return 0, 0, ErrInputTooLarge
	}
	if len(dst) == 0 {
		return 0, 0, ErrDstTooSmall
	}

	c := acquireCompressor()
	defer releaseCompressor(c)
	c.Reset()

	written, consumed = compressDestSizeSequences(dst, src, &c.table)
	return written, consumed, nil
}

// compressDestSizeSequences is the budget-bounded variant of the greedy
// parser: every sequence is costed in full before emission, and the block is
// closed early instead of failing when dst runs out. Requires len(dst) >= 1.
// One byte is always held back for the closing literal token.
func compressDestSizeSequences(dst, src []byte, table *matchTable) (written, consumed int) {
	var outputPos, literalStart int
	srcLen := len(src)

	if srcLen >= minSrcForMatch {
		scanLimit := srcLen - mfLimit
		matchLimit := srcLen - lastLiterals

		inputPos := 1
		table[hashSeq(binary.LittleEndian.Uint32(src))] = 0
		nextHash := hashSeq(binary.LittleEndian.Uint32(src[1:]))

		for {
			var candidate uint32
			nextPos := inputPos
			step := 1
			searchMatchNb := accelerationDefault << skipTrigger

			for {
				h := nextHash
				inputPos = nextPos
				nextPos = inputPos + step
				step = searchMatchNb >> skipTrigger
				searchMatchNb++

				if nextPos > scanLimit+1 {
					goto emitTail
				}

				candidate = table[h]
				nextHash = hashSeq(binary.LittleEndian.Uint32(src[nextPos:]))
				table[h] = uint32(inputPos) //nolint:gosec // G115: positions fit uint32 for inputs under MaxInputSize

				if int(candidate) < inputPos && inputPos-int(candidate) <= maxDistance &&
					binary.LittleEndian.Uint32(src[candidate:]) == binary.LittleEndian.Uint32(src[inputPos:]) {
					break
				}
			}

			// Extend the match backwards over bytes shared with the literal run.
			for inputPos > literalStart && candidate > 0 && src[inputPos-1] == src[candidate-1] {
				inputPos--
				candidate--
			}

			// Cost the whole sequence up front; stop consuming input rather
			// than emit something that might not fit.
			litLen := inputPos - literalStart
			extra := matchLength(src, nil, inputPos+minMatch, candidate+minMatch, 0, 0, matchLimit)
			cost := 1 + litLen + (litLen+240)/255 + 2 + (extra+240)/255
			if outputPos+cost+1 > len(dst) {
				goto emitTail
			}

			tokenPos := outputPos
			outputPos++
			if litLen >= runMask {
				dst[tokenPos] = runMask << mlBits
				outputPos = appendLength(dst, outputPos, litLen-runMask)
			} else {
				dst[tokenPos] = byte(litLen) << mlBits
			}
			outputPos += copy(dst[outputPos:], src[literalStart:inputPos])

			binary.LittleEndian.PutUint16(dst[outputPos:], uint16(inputPos-int(candidate))) //nolint:gosec // G115: distance checked against maxDistance
			outputPos += 2
			if extra >= mlMask {
				dst[tokenPos] |= mlMask
				outputPos = appendLength(dst, outputPos, extra-mlMask)
			} else {
				dst[tokenPos] |= byte(extra)
			}

			inputPos += minMatch + extra
			literalStart = inputPos

			if inputPos > scanLimit {
				goto emitTail
			}

			// Restarting the probe at inputPos re-tests the position right
			// after the match, so chained matches come out as zero-literal
			// sequences just like in the streaming parser.
			table[hashSeq(binary.LittleEndian.Uint32(src[inputPos-2:]))] = uint32(inputPos - 2) //nolint:gosec // G115: positions fit uint32 for inputs under MaxInputSize
			nextHash = hashSeq(binary.LittleEndian.Uint32(src[inputPos:]))
		}
	}

emitTail:
	tailLen := srcLen - literalStart
	budget := len(dst) - outputPos
	if tailLen+1+(tailLen+240)/255 > budget {
		// Trim the final run to fill the remaining space exactly.
		tailLen = budget - 1
		tailLen -= (tailLen + 256 - runMask) / 256
	}

	if tailLen >= runMask {
		dst[outputPos] = runMask << mlBits
		outputPos++
		outputPos = appendLength(dst, outputPos, tailLen-runMask)
	} else {
		dst[outputPos] = byte(tailLen) << mlBits
		outputPos++
	}
	outputPos += copy(dst[outputPos:], src[literalStart:literalStart+tailLen])

	return outputPos, literalStart + tailLen
}
