package heap

import "unsafe"

// nullOffset is the sentinel value for "no link" in next/prev, since a real
// offset of 0 is a legitimate address (the first header in a page).
const nullOffset = ^uint32(0)

// blockHeader is the inline metadata record placed immediately before every
// user-visible block inside a page's buffer. It is reinterpreted directly
// out of the page's []byte arena via unsafe.Pointer rather than copied, so
// that mutating a header in place is a couple of stores, not a marshal round
// trip. next/prev are byte offsets within the owning page's buffer, not raw
// pointers, so nothing breaks if the arena is ever addressed from a
// different base (and offsets survive being printed in the debug dump).
type blockHeader struct {
	size      uint32
	next      uint32
	prev      uint32
	pageIndex uint16
	available bool
	_         byte // padding, keeps the struct 4-byte aligned and sized H=16
}

// headerSize is H from the spec: the fixed number of bytes every header
// consumes ahead of its payload.
const headerSize = uint32(unsafe.Sizeof(blockHeader{}))

// headerAlign is the alignment blockHeader requires. Every block offset and
// every block size is kept a multiple of this so that headerAt is always a
// well-aligned reinterpretation, on every architecture this module targets.
const headerAlign = uint32(unsafe.Alignof(blockHeader{}))

// alignUp rounds size up to the next multiple of headerAlign.
func alignUp(size uint32) uint32 {
	rem := size % headerAlign
	if rem == 0 {
		return size
	}
	return size + (headerAlign - rem)
}

// headerAt reinterprets the bytes of buf at offset as a *blockHeader. The
// caller is responsible for offset being a valid, in-bounds header position;
// this is the unsafe boundary the rest of the package is built around.
func headerAt(buf []byte, offset uint32) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(&buf[offset]))
}

// payload returns the writable region following the header at offset.
func payload(buf []byte, offset uint32, size uint32) []byte {
	start := offset + headerSize
	return buf[start : start+size : start+size]
}
