package heap

import "fmt"

// Block is a handle to a live allocation returned by Manager.Alloc. It is
// the checked outer surface over the header's raw offset: callers get a
// writable byte slice and a stable address string, never the offset itself.
type Block interface {
	// Bytes returns the writable region backing this allocation. The slice
	// is valid until the matching Free.
	Bytes() []byte
	// Size returns the block's payload size: the requested size rounded up
	// to a multiple of 4, or more when the headroom was absorbed.
	Size() uint32
	// Addr returns a stable, human-readable identifier for this block,
	// suitable for logging and for the debug dump.
	Addr() string
}

type block struct {
	mgr       *Manager
	pageIndex uint32
	offset    uint32
}

func (b *block) Bytes() []byte {
	p := b.mgr.pages[b.pageIndex]
	h := headerAt(p.buffer, b.offset)
	return payload(p.buffer, b.offset, h.size)
}

func (b *block) Size() uint32 {
	p := b.mgr.pages[b.pageIndex]
	return headerAt(p.buffer, b.offset).size
}

func (b *block) Addr() string {
	return fmt.Sprintf("%d:%#x", b.pageIndex, b.offset)
}
