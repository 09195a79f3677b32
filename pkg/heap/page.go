package heap

// page is one contiguous byte buffer obtained from the Go runtime, plus the
// bookkeeping the manager needs to sub-allocate inside it.
type page struct {
	buffer  []byte
	memLeft uint32
	index   uint32
	next    *page // kept in step with the manager's index-addressable slice;
	              // the manager and the debug dump iterate the slice.
}

// newPage allocates a fresh buffer of exactly size bytes and carves it into
// a single free block spanning the whole payload area, per spec.md §4.1/§4.4.
func newPage(size uint32, index uint32) *page {
	p := &page{
		buffer:  make([]byte, size),
		memLeft: size - headerSize,
		index:   index,
	}

	h := headerAt(p.buffer, 0)
	h.size = size - headerSize
	h.next = nullOffset
	h.prev = nullOffset
	h.pageIndex = uint16(index)
	h.available = true

	return p
}
