package heap

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"varheap/util/helpers"
)

// addr renders a header offset as the dump's stable address form, or "0"
// for the null sentinel (spec.md §6, dump format).
func addr(pageIndex uint32, offset uint32) string {
	if offset == nullOffset {
		return "0"
	}
	return fmt.Sprintf("%d:%#x", pageIndex, offset)
}

// Dump writes the debug memory dump described in spec.md §4.6/§6 to w. Not
// load-bearing for correctness; intended for human inspection.
func (m *Manager) Dump(w io.Writer) error {
	if m.closed {
		return ErrAlreadyClosed
	}

	for _, p := range m.pages {
		if _, err := fmt.Fprintf(w, "Page : %d\n", p.index); err != nil {
			return errors.Wrap(err, "failed to write dump page header")
		}

		for cur := uint32(0); ; {
			var h blockHeader
			helpers.Frombytes(p.buffer[cur:cur+headerSize], &h)

			if err := dumpBlock(w, p, cur, &h); err != nil {
				return errors.Wrap(err, "failed to write dump block")
			}

			if h.next == nullOffset {
				break
			}
			cur = h.next
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Wrap(err, "failed to write dump page separator")
		}
	}

	return nil
}

func dumpBlock(w io.Writer, p *page, offset uint32, h *blockHeader) error {
	avail := 0
	if h.available {
		avail = 1
	}

	if _, err := fmt.Fprintf(w,
		"Meta Data Address: %s\nNext Node Address: %s\nPrev Node Address: %s\nMemory Size : %d\nAvailability : %d\nAddress | Memory Content\n",
		addr(p.index, offset), addr(p.index, h.next), addr(p.index, h.prev), h.size, avail,
	); err != nil {
		return err
	}

	data := payload(p.buffer, offset, h.size)
	for i, b := range data {
		if _, err := fmt.Fprintf(w, "%s | %#02x\n", addr(p.index, offset+headerSize+uint32(i)), b); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
