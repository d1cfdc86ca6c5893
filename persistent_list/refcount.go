package persistent_list

import (
	"sync"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// refCount is the number of owners of a node: every List whose head is the
// node, plus the node (if any) whose next is the node.
//
// The count is lock-protected so that Lists sharing a suffix can be created
// and released from different goroutines. Nothing else about a node changes
// after it is published, so no other synchronization is needed.
type refCount struct {
	n  uint64
	mu *sync.Mutex
}

// newRefCount returns a count owned by its creator.
func newRefCount() *refCount {
	return &refCount{n: 1, mu: new(sync.Mutex)}
}

func (c *refCount) get() uint64 {
	c.mu.Lock()
	n := c.n
	c.mu.Unlock()
	return n
}

// inc adds an owner. Only an existing owner can share, so the count is never
// zero here.
func (c *refCount) inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	primitive.Assert(c.n > 0)
	c.n = std.SumAssumeNoOverflow(c.n, 1)
}

// dec removes an owner and returns how many remain.
func (c *refCount) dec() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	primitive.Assert(c.n > 0)
	c.n = c.n - 1
	return c.n
}
