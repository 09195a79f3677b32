package heap

import (
	"github.com/sirupsen/logrus"

	"varheap/util/logger"
)

// Options configures a Manager. See spec.md §4.1 and §10.3.
type Options struct {
	// PageSize is the size, in bytes, of every page this manager creates,
	// rounded up to a multiple of the header alignment (4).
	PageSize uint32
	// FragmentThreshold bounds the headroom, in bytes, a chosen block may
	// keep: the block is split only when its headroom exceeds
	// FragmentThreshold plus the header size, and is absorbed whole otherwise.
	FragmentThreshold uint32
	// DisableGrowth controls whether Alloc aborts instead of requesting a
	// new page when no existing page can satisfy a request. The zero value
	// is false, so growth is enabled by default, matching the documented
	// default (spec.md §4.1/§6): a constructor call that sets only the page
	// size, heap.New(&Options{PageSize: n}), grows on exhaustion without any
	// caller having to opt in.
	DisableGrowth bool
	// InitialPages eagerly allocates this many pages at construction
	// instead of just one. Zero and one are equivalent. This is the §10.3
	// pre-warm convenience; it does not change any allocator invariant.
	InitialPages uint32
	// Log receives diagnostics. Defaults to logger.L.
	Log logrus.FieldLogger
}

// withDefaults returns a copy of o with zero-value fields filled in.
func (o Options) withDefaults() Options {
	if o.InitialPages == 0 {
		o.InitialPages = 1
	}
	if o.Log == nil {
		o.Log = logger.L
	}
	return o
}
