package lz4

import "unsafe"

// continuesSlice reports whether next begins at the first byte past prev's
// length inside the same backing array, so prev can be extended over next by
// reslicing. Only capacity and element identity are inspected; a false
// negative is harmless, callers then treat the history as a detached segment.
func continuesSlice(prev, next []byte) bool {
	if len(next) == 0 || cap(prev) < len(prev)+len(next) {
		return false
	}
	ext := prev[: len(prev)+1 : len(prev)+1]
	return &ext[len(prev)] == &next[0]
}

// overlapClip returns the part of window that still holds valid history when
// src may have been written over it (ring buffer reuse). If src ends inside
// the window, the suffix past src survives; if src covers the window's end,
// nothing does. Disjoint buffers return the window unchanged.
func overlapClip(window, src []byte) []byte {
	if len(window) == 0 || len(src) == 0 {
		return window
	}

	wStart := uintptr(unsafe.Pointer(&window[0]))
	wEnd := wStart + uintptr(len(window))
	sStart := uintptr(unsafe.Pointer(&src[0]))
	sEnd := sStart + uintptr(len(src))

	switch {
	case sEnd <= wStart || sStart >= wEnd:
		return window
	case sEnd >= wEnd:
		return nil
	default:
		return window[sEnd-wStart:]
	}
}
