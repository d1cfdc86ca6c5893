// Package optional_list is the owned_list stack with the hand-written link tag
// replaced by an optional owning pointer: a nil *node is the empty link.
package optional_list

type node struct {
	elem int32
	next link
}

// link optionally owns a node.
type link = *node

// take moves the value out of *l, leaving nil behind.
func take(l *link) link {
	old := *l
	*l = nil
	return old
}

// mapNode applies f to the node l owns, if any.
func mapNode[T any](l link, f func(*node) T) (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return f(l), true
}

type List struct {
	head link
}

func New() *List {
	return &List{}
}

func (l *List) Push(elem int32) {
	l.head = &node{elem: elem, next: take(&l.head)}
}

func (l *List) Pop() (int32, bool) {
	return mapNode(l.popNode(), func(n *node) int32 { return n.elem })
}

func (l *List) Peek() (int32, bool) {
	return mapNode(l.head, func(n *node) int32 { return n.elem })
}

func (l *List) IsEmpty() bool {
	return l.head == nil
}

func (l *List) popNode() link {
	n := take(&l.head)
	if n != nil {
		l.head = take(&n.next)
	}
	return n
}

// Drop frees the list iteratively; see owned_list.List.Drop.
func (l *List) Drop() {
	for l.popNode() != nil {
	}
}
