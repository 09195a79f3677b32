package heap

import "errors"

var (
	// ErrOversizedRequest is returned by Alloc when the requested size does
	// not fit inside a single page, regardless of fragmentation.
	ErrOversizedRequest = errors.New("requested size exceeds page size")

	// ErrOutOfMemory is the error Alloc returns from Manager.fatal's call
	// site, for tests and callers that inspect the return value rather than
	// relying on the log.Fatal process termination that precedes it.
	ErrOutOfMemory = errors.New("no candidate block available and growth is disabled")

	// ErrInvalidPointer is returned by Free when the block handle was not
	// created by the receiving Manager, or its page index is out of range for
	// it. These are the invalid-pointer cases cheap enough to check; general
	// double-free and invalid-pointer detection remain out of scope.
	ErrInvalidPointer = errors.New("block handle does not belong to this manager")

	// ErrAlreadyClosed is returned by any operation attempted on a Manager
	// after Close has released its pages.
	ErrAlreadyClosed = errors.New("manager is closed")

	// ErrInvalidPageSize is returned by New when PageSize is not larger than
	// a single block header (zero included).
	ErrInvalidPageSize = errors.New("page size must be larger than the block header size")
)
