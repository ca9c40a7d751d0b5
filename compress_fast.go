// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// matchTable holds the most recent position of every hashed 4-byte sequence,
// in the virtual coordinates of the stream. Entries older than the window are
// rejected by a range check before use, so the table never needs scrubbing
// between blocks of one stream.
type matchTable [hashTableSize]uint32

// hashSeq maps a 4-byte sequence to a table slot.
func hashSeq(sequence uint32) uint32 {
	return (sequence * hashMul) >> (32 - hashLog)
}

// loadCandidateSeq reads the 4 bytes at virtual position cand from the window
// or from src. Every table entry in window range has at least 4 bytes ahead.
func loadCandidateSeq(src, window []byte, cand, windowBase, tip uint32) uint32 {
	if cand >= tip {
		return binary.LittleEndian.Uint32(src[cand-tip:])
	}
	return binary.LittleEndian.Uint32(window[cand-windowBase:])
}

// appendLength writes the extension bytes for n, the part of a length that
// did not fit its token nibble, and returns the new write position.
func appendLength(dst []byte, outputPos, n int) int {
	for ; n >= 255; n -= 255 {
		dst[outputPos] = 255
		outputPos++
	}
	dst[outputPos] = byte(n)
	return outputPos + 1
}

// matchLength counts equal bytes between src[inputPos:] and the candidate at
// virtual position cand, stopping at limit on the src side. A candidate in
// the window continues into src once it reaches the window end, mirroring the
// decoder's contiguous view of history.
func matchLength(src, window []byte, inputPos int, cand, windowBase, tip uint32, limit int) int {
	n := 0
	if cand < tip {
		wOff := int(cand - windowBase)
		wRest := len(window) - wOff
		for n < wRest && inputPos+n < limit && window[wOff+n] == src[inputPos+n] {
			n++
		}
		if n < wRest {
			return n
		}
		for inputPos+n < limit && src[n-wRest] == src[inputPos+n] {
			n++
		}
		return n
	}

	cOff := int(cand - tip)
	for inputPos+n < limit && src[cOff+n] == src[inputPos+n] {
		n++
	}
	return n
}

// compressSequences is the greedy single-pass parser behind every compression
// entry point. src occupies virtual positions [tip, tip+len(src)) and window
// holds the bytes logically preceding it at [tip-len(window), tip); emitted
// offsets never exceed maxDistance, so a decoder holding the same history can
// resolve them. Returns the number of bytes written to dst.
func compressSequences(dst, src, window []byte, tip uint32, table *matchTable, acceleration int) (int, error) {
	var outputPos, literalStart int
	srcLen := len(src)

	if srcLen >= minSrcForMatch {
		scanLimit := srcLen - mfLimit       // last position a match may start at
		matchLimit := srcLen - lastLiterals // matches stop short of the final literals
		windowBase := tip - uint32(len(window)) //nolint:gosec // G115: the window never exceeds maxWindowSize

		inputPos := 1
		table[hashSeq(binary.LittleEndian.Uint32(src))] = tip
		nextHash := hashSeq(binary.LittleEndian.Uint32(src[1:]))

		for {
			// Probe for a match with the acceleration skip schedule: the
			// stride grows by one every 1<<skipTrigger misses.
			var candidate, current uint32
			nextPos := inputPos
			step := 1
			searchMatchNb := acceleration << skipTrigger

			for {
				h := nextHash
				inputPos = nextPos
				nextPos = inputPos + step
				step = searchMatchNb >> skipTrigger
				searchMatchNb++

				if nextPos > scanLimit+1 {
					goto emitTail
				}

				current = tip + uint32(inputPos) //nolint:gosec // G115: positions fit uint32 for inputs under MaxInputSize
				candidate = table[h]
				nextHash = hashSeq(binary.LittleEndian.Uint32(src[nextPos:]))
				table[h] = current

				if candidate >= windowBase && current-candidate <= maxDistance &&
					loadCandidateSeq(src, window, candidate, windowBase, tip) == binary.LittleEndian.Uint32(src[inputPos:]) {
					break
				}
			}

			// Extend the match backwards over bytes shared with the literal run.
			// All three positions move together so current stays tip+inputPos
			// and the emitted distance tracks the moved match start.
			for inputPos > literalStart && candidate > windowBase {
				var prev byte
				if candidate > tip {
					prev = src[candidate-tip-1]
				} else {
					prev = window[candidate-windowBase-1]
				}
				if src[inputPos-1] != prev {
					break
				}
				inputPos--
				candidate--
				current--
			}

			// Literal run up to the match.
			litLen := inputPos - literalStart
			tokenPos := outputPos
			if outputPos+litLen+litLen/255+8 > len(dst) {
				return 0, ErrDstTooSmall
			}
			outputPos++
			if litLen >= runMask {
				dst[tokenPos] = runMask << mlBits
				outputPos = appendLength(dst, outputPos, litLen-runMask)
			} else {
				dst[tokenPos] = byte(litLen) << mlBits
			}
			outputPos += copy(dst[outputPos:], src[literalStart:inputPos])

			for {
				// Offset, then match length beyond the verified minMatch.
				binary.LittleEndian.PutUint16(dst[outputPos:], uint16(current-candidate)) //nolint:gosec // G115: distance checked against maxDistance
				outputPos += 2

				extra := matchLength(src, window, inputPos+minMatch, candidate+minMatch, windowBase, tip, matchLimit)
				inputPos += minMatch + extra

				if outputPos+6+(extra+240)/255 > len(dst) {
					return 0, ErrDstTooSmall
				}
				if extra >= mlMask {
					dst[tokenPos] |= mlMask
					outputPos = appendLength(dst, outputPos, extra-mlMask)
				} else {
					dst[tokenPos] |= byte(extra)
				}

				literalStart = inputPos
				if inputPos > scanLimit {
					goto emitTail
				}

				// Keep the table warm behind the match, then try to chain
				// another match with an empty literal run.
				table[hashSeq(binary.LittleEndian.Uint32(src[inputPos-2:]))] = tip + uint32(inputPos-2) //nolint:gosec // G115: positions fit uint32 for inputs under MaxInputSize

				h := hashSeq(binary.LittleEndian.Uint32(src[inputPos:]))
				candidate = table[h]
				current = tip + uint32(inputPos) //nolint:gosec // G115: positions fit uint32 for inputs under MaxInputSize
				table[h] = current

				if candidate < windowBase || current-candidate > maxDistance ||
					loadCandidateSeq(src, window, candidate, windowBase, tip) != binary.LittleEndian.Uint32(src[inputPos:]) {
					break
				}

				tokenPos = outputPos
				dst[tokenPos] = 0
				outputPos++
			}

			inputPos++
			nextHash = hashSeq(binary.LittleEndian.Uint32(src[inputPos:]))
		}
	}

emitTail:
	tailLen := srcLen - literalStart
	if outputPos+tailLen+1+(tailLen+240)/255 > len(dst) {
		return 0, ErrDstTooSmall
	}

	if tailLen >= runMask {
		dst[outputPos] = runMask << mlBits
		outputPos++
		outputPos = appendLength(dst, outputPos, tailLen-runMask)
	} else {
		dst[outputPos] = byte(tailLen) << mlBits
		outputPos++
	}
	outputPos += copy(dst[outputPos:], src[literalStart:])

	return outputPos, nil
}
