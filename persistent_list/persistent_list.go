// Package persistent_list implements an immutable singly-linked list whose
// nodes are shared between lists.
//
//	list1                  A -> B -> C -> D
//	list2 = list1.Tail()        B -> C -> D
//	list3 = list2.Append(X)     X -> B -> C -> D
//
// All three lists share a single allocation for B -> C -> D. Sharing is safe
// because a published node is never mutated; ownership is tracked with a
// reference count per node, and a node is freed once its last owner releases
// it.
package persistent_list

import (
	"iter"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type node[T any] struct {
	elem T
	next *node[T]
	// number of elements starting at this node
	len   uint64
	refs  *refCount
	freed bool
}

// share returns a new owning reference to n (which may be nil).
func share[T any](n *node[T]) *node[T] {
	if n != nil {
		primitive.Assert(!n.freed)
		n.refs.inc()
	}
	return n
}

// free destroys n, which must have no remaining owners. It hands back the
// reference n held to its successor so the caller can continue the cascade.
func (n *node[T]) free() *node[T] {
	next := n.next
	var zero T
	n.elem = zero
	n.next = nil
	n.freed = true
	return next
}

// release drops one reference to n. Freeing a node releases its reference to
// the next one, so this walks down the chain until it reaches a node that is
// still owned elsewhere. It is a loop rather than recursion, so tearing down
// a long unshared chain uses constant stack.
func release[T any](n *node[T]) {
	for n != nil {
		if n.refs.dec() > 0 {
			return
		}
		n = n.free()
	}
}

// List is one owner of a (possibly empty) chain of nodes. The zero value is
// not useful; create lists with New.
//
// A List must be released exactly once when it is no longer needed. Calling
// any other method on a released List panics.
type List[T any] struct {
	head     *node[T]
	released bool
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice builds the list whose elements are elems, with elems[0] at the
// head.
func FromSlice[T any](elems ...T) *List[T] {
	l := New[T]()
	for i := len(elems) - 1; i >= 0; i-- {
		next := l.Append(elems[i])
		l.Release()
		l = next
	}
	return l
}

func (l *List[T]) checkLive() {
	primitive.Assert(!l.released)
}

// Append returns a new list with elem in front of l. The receiver is not
// modified and its nodes are shared, not copied.
func (l *List[T]) Append(elem T) *List[T] {
	l.checkLive()
	var n = uint64(1)
	if l.head != nil {
		n = std.SumAssumeNoOverflow(l.head.len, 1)
	}
	return &List[T]{head: &node[T]{
		elem: elem,
		next: share(l.head),
		len:  n,
		refs: newRefCount(),
	}}
}

// Head returns the first element. The boolean is false if the list is empty.
func (l *List[T]) Head() (T, bool) {
	l.checkLive()
	if l.head == nil {
		var zero T
		return zero, false
	}
	primitive.Assert(!l.head.freed)
	return l.head.elem, true
}

// Tail returns the list without its first element. The tail of an empty list
// is empty.
func (l *List[T]) Tail() *List[T] {
	l.checkLive()
	if l.head == nil {
		return New[T]()
	}
	return &List[T]{head: share(l.head.next)}
}

// Clone returns another owner of the same nodes.
func (l *List[T]) Clone() *List[T] {
	l.checkLive()
	return &List[T]{head: share(l.head)}
}

func (l *List[T]) Len() uint64 {
	l.checkLive()
	if l.head == nil {
		return 0
	}
	return l.head.len
}

// All iterates over the elements from the head. It does not take ownership of
// anything, so l must not be released during the iteration.
func (l *List[T]) All() iter.Seq[T] {
	l.checkLive()
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			primitive.Assert(!n.freed)
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Release gives up l's ownership of its nodes, freeing every node that no
// other list still reaches. Releasing twice has no effect.
func (l *List[T]) Release() {
	if l.released {
		return
	}
	l.released = true
	release(l.head)
	l.head = nil
}
