// Package heap implements a variable-size, page-backed heap allocator:
// large pages are reserved from the Go runtime in bulk, then sub-allocated
// with an intrusive free/used list and a worst-fit placement policy.
//
// The Manager is not safe for concurrent use; callers needing that impose
// it externally (e.g. an outer sync.Mutex).
package heap

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Manager owns a list of pages and implements Alloc/Free over them.
type Manager struct {
	pages             []*page
	pageSize          uint32
	fragmentThreshold uint32
	growOnExhaustion  bool
	log               logrus.FieldLogger
	closed            bool
}

// New constructs a Manager and eagerly allocates its first page (or
// opts.InitialPages pages, if set). See spec.md §4.1.
func New(opts *Options) (*Manager, error) {
	o := opts.withDefaults()

	if o.PageSize <= headerSize {
		return nil, ErrInvalidPageSize
	}

	m := &Manager{
		pageSize:          alignUp(o.PageSize),
		fragmentThreshold: o.FragmentThreshold,
		growOnExhaustion:  !o.DisableGrowth,
		log:               o.Log,
	}

	for i := uint32(0); i < o.InitialPages; i++ {
		if _, err := m.requestNewPage(); err != nil {
			// A page-allocation failure during construction is the same
			// fatal condition as one during a later requestNewPage (spec.md
			// §7, kind 3): release everything and abort, rather than hand
			// back a half-built Manager.
			m.fatal(fmt.Sprintf("failed to allocate initial page: %v", err))
			return nil, ErrOutOfMemory
		}
	}

	return m, nil
}

// Alloc returns a Block wrapping at least size writable bytes. See
// spec.md §4.2.
func (m *Manager) Alloc(size uint32) (Block, error) {
	if m.closed {
		return nil, ErrAlreadyClosed
	}

	if size > m.pageSize {
		m.log.Warnf("requested memory size %d exceeds page size %d", size, m.pageSize)
		return nil, ErrOversizedRequest
	}

	size = alignUp(size)

	for i, p := range m.pages {
		// Skip pages that cannot possibly satisfy the request. Preserves
		// the original source's strict inequality bug-for-bug: a page
		// whose memLeft equals size exactly is skipped (spec.md §9,
		// open question 2, resolved as "preserve").
		if size >= p.memLeft {
			continue
		}

		offset, ok := worstFit(p, size)
		if !ok {
			continue
		}

		m.place(p, offset, size)
		return &block{mgr: m, pageIndex: uint32(i), offset: offset}, nil
	}

	if !m.growOnExhaustion {
		m.fatal("Bad Allocation detected. Application Terminated.")
		return nil, ErrOutOfMemory
	}

	p, err := m.requestNewPage()
	if err != nil {
		// Growth enabled but the new page's allocation itself failed: same
		// fatal policy as growth-disabled exhaustion (spec.md §7, kind 3).
		m.fatal(fmt.Sprintf("failed to grow heap: %v", err))
		return nil, ErrOutOfMemory
	}

	offset, ok := worstFit(p, size)
	if !ok {
		return nil, errors.New("fresh page could not satisfy allocation request")
	}

	m.place(p, offset, size)
	return &block{mgr: m, pageIndex: p.index, offset: offset}, nil
}

// Free marks b's block available again and coalesces it with any adjacent
// free neighbors. See spec.md §4.3.
func (m *Manager) Free(b Block) error {
	if m.closed {
		return ErrAlreadyClosed
	}

	bl, ok := b.(*block)
	if !ok || bl.mgr != m {
		return ErrInvalidPointer
	}
	if int(bl.pageIndex) >= len(m.pages) {
		return ErrInvalidPointer
	}

	p := m.pages[bl.pageIndex]
	h := headerAt(p.buffer, bl.offset)
	h.available = true
	p.memLeft += h.size

	// Forward coalesce: absorb the next block if it is free.
	if h.next != nullOffset {
		next := headerAt(p.buffer, h.next)
		if next.available {
			h.size += next.size + headerSize
			h.next = next.next
			if h.next != nullOffset {
				headerAt(p.buffer, h.next).prev = bl.offset
			}
			p.memLeft += headerSize
		}
	}

	// Backward coalesce: get absorbed into the previous block if it is
	// free. Must run after the forward step so it sees the extended size.
	if h.prev != nullOffset {
		prev := headerAt(p.buffer, h.prev)
		if prev.available {
			prev.size += h.size + headerSize
			prev.next = h.next
			if h.next != nullOffset {
				// spec.md §9, open question 3: the original omits this
				// repair, leaving a dangling backlink. Included here.
				headerAt(p.buffer, h.next).prev = h.prev
			}
			p.memLeft += headerSize
		}
	}

	return nil
}

// Close releases every page this manager holds. Safe to call more than
// once.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.pages = nil
	m.closed = true
	return nil
}

// worstFit walks p's block list and returns the offset of the available
// block of maximal size that is at least size bytes, breaking ties by
// address order (the first such block encountered).
func worstFit(p *page, size uint32) (offset uint32, ok bool) {
	var best uint32
	var bestSize uint32

	for cur := uint32(0); ; {
		h := headerAt(p.buffer, cur)
		if h.available && h.size >= size {
			if !ok || h.size > bestSize {
				best, bestSize, ok = cur, h.size, true
			}
		}
		if h.next == nullOffset {
			break
		}
		cur = h.next
	}

	return best, ok
}

// place carves size bytes out of the free block at offset in page p,
// splitting off the headroom as a new free block when it comfortably
// exceeds the fragmentation threshold, or absorbing it into the used block
// otherwise. See spec.md §4.2 step 3.
func (m *Manager) place(p *page, offset uint32, size uint32) {
	h := headerAt(p.buffer, offset)
	oldSize := h.size
	headroom := oldSize - size

	var newFreeSize uint32

	if headroom > m.fragmentThreshold+headerSize {
		newOffset := offset + headerSize + size
		n := headerAt(p.buffer, newOffset)

		n.next = h.next
		if h.next != nullOffset {
			headerAt(p.buffer, h.next).prev = newOffset
		}
		n.prev = offset
		n.size = headroom - headerSize
		n.available = true
		n.pageIndex = uint16(p.index)

		h.next = newOffset
		h.size = size

		newFreeSize = n.size
	}

	h.available = false

	// memLeft is kept as an exact invariant (spec.md §8 Accounting): the
	// candidate's whole previous size leaves the free pool, and whatever
	// remainder survives as a fresh free block (newFreeSize, zero when
	// absorbed) re-enters it.
	p.memLeft = p.memLeft - oldSize + newFreeSize
}

// requestNewPage allocates a fresh page, appends it to the manager's page
// list, and returns it. See spec.md §4.4.
func (m *Manager) requestNewPage() (p *page, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, errors.Errorf("failed to allocate page: %v", r)
		}
	}()

	np := newPage(m.pageSize, uint32(len(m.pages)))

	if len(m.pages) > 0 {
		m.pages[len(m.pages)-1].next = np
	}
	m.pages = append(m.pages, np)

	return np, nil
}

// fatal releases every page this manager holds and logs msg at Fatal level.
// This lineage's logger (logrus) terminates the process on Fatal, the
// Go-idiomatic replacement for the original's explicit abort().
func (m *Manager) fatal(msg string) {
	m.pages = nil
	m.closed = true
	m.log.Fatal(msg)
}
