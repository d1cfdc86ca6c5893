// Package owned_list is a singly-linked stack where every node has exactly
// one owner.
//
// A link is an explicit two-variant tag: either empty, or more, in which case
// it owns one node. Ownership is moved, never copied: whenever a link is read
// out of a field, the field is reset to empty first.
package owned_list

import "github.com/goose-lang/primitive"

type linkTag uint8

const (
	empty linkTag = iota
	more
)

// link is either empty (node is nil) or more (node is the owned node).
type link struct {
	tag  linkTag
	node *node
}

type node struct {
	elem int32
	next link
}

func emptyLink() link {
	return link{tag: empty}
}

func moreLink(n *node) link {
	// a more link always owns a real node; empty is the only way to say "none"
	primitive.Assert(n != nil)
	return link{tag: more, node: n}
}

// replace stores v in *dst and returns the previous value, so the caller
// becomes the sole owner of what was there.
func replace(dst *link, v link) link {
	old := *dst
	*dst = v
	return old
}

type List struct {
	head link
}

func New() *List {
	return &List{head: emptyLink()}
}

func (l *List) Push(elem int32) {
	n := &node{
		elem: elem,
		next: replace(&l.head, emptyLink()),
	}
	l.head = moreLink(n)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the list was empty.
func (l *List) Pop() (int32, bool) {
	top := l.popNode()
	switch top.tag {
	case more:
		return top.node.elem, true
	default:
		return 0, false
	}
}

// Peek returns the head element without removing it.
func (l *List) Peek() (int32, bool) {
	if l.head.tag == empty {
		return 0, false
	}
	return l.head.node.elem, true
}

func (l *List) IsEmpty() bool {
	return l.head.tag == empty
}

// popNode detaches the head node. The list's head is first replaced by empty,
// then the taken node's next link is moved up to become the new head, leaving
// the detached node pointing at nothing.
func (l *List) popNode() link {
	taken := replace(&l.head, emptyLink())
	if taken.tag == more {
		l.head = replace(&taken.node.next, emptyLink())
	}
	return taken
}

// Drop tears the list down one node at a time. Each detached node has already
// had its next link cut, so freeing it never reaches the rest of the chain.
//
// The list is empty (and still usable) afterwards.
func (l *List) Drop() {
	for {
		if l.popNode().tag == empty {
			break
		}
	}
}
