package list

import "iter"

// Double is a doubly-linked list. Unlike [Single], nodes can be
// inserted and removed anywhere in the list, not only at the ends.
// The zero value is an empty list ready to use.
type Double[T any] struct {
	head, tail *Node[T]
	length     int
}

// Node is a node of a [Double].
type Node[T any] struct {
	Val        T
	prev, next *Node[T]
}

// Next returns the node after n, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node before n, or nil if n is the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Push adds a new node containing v to the tail of the list and
// returns it.
func (ls *Double[T]) Push(v T) *Node[T] {
	n := &Node[T]{Val: v, prev: ls.tail}
	if ls.head == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.length++
	return n
}

// InsertAfter adds a new node containing v directly after n, which
// must be a node of this list, and returns the new node.
func (ls *Double[T]) InsertAfter(n *Node[T], v T) *Node[T] {
	nn := &Node[T]{Val: v, prev: n, next: n.next}
	if n.next == nil {
		ls.tail = nn
	} else {
		n.next.prev = nn
	}
	n.next = nn
	ls.length++
	return nn
}

// InsertBefore adds a new node containing v directly before n, which
// must be a node of this list, and returns the new node.
func (ls *Double[T]) InsertBefore(n *Node[T], v T) *Node[T] {
	nn := &Node[T]{Val: v, prev: n.prev, next: n}
	if n.prev == nil {
		ls.head = nn
	} else {
		n.prev.next = nn
	}
	n.prev = nn
	ls.length++
	return nn
}

// Remove unlinks the given node, which must be a node of this list.
// The node's links are cleared so it cannot be used to reach the list
// afterwards.
func (ls *Double[T]) Remove(n *Node[T]) {
	if n.prev == nil {
		ls.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		ls.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	ls.length--
}

// Head returns the first node of the list, or nil if it is empty.
func (ls *Double[T]) Head() *Node[T] { return ls.head }

// Tail returns the last node of the list, or nil if it is empty.
func (ls *Double[T]) Tail() *Node[T] { return ls.tail }

// Len returns the number of nodes in the list.
func (ls *Double[T]) Len() int { return ls.length }

// Find returns the node at position i, or nil if i is out of range.
// It walks from whichever end of the list is closer to i.
func (ls *Double[T]) Find(i int) *Node[T] {
	if i < 0 || i >= ls.length {
		return nil
	}

	if i < ls.length/2 {
		n := ls.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}

	n := ls.tail
	for j := ls.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// Nodes returns an iterator over the nodes of the list. It is safe to
// remove the currently-yielded node from the list during iteration.
func (ls *Double[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		cur := ls.head
		for cur != nil {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}
