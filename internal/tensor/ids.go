package tensor

import "sync/atomic"

// IDAllocator hands out tensor identities.
//
// Identities are unique per allocator and start at 1. Next is safe for
// concurrent use; only uniqueness is guaranteed, not ordering across
// goroutines. The zero value is ready to use.
type IDAllocator struct {
	last atomic.Uint64
}

// NewIDAllocator creates an allocator whose first identity is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns a fresh identity.
func (a *IDAllocator) Next() uint64 {
	return a.last.Add(1)
}

// Issued returns the number of identities handed out so far.
func (a *IDAllocator) Issued() uint64 {
	return a.last.Load()
}
