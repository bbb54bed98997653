// Package list provides singly and doubly linked lists. Each node is
// owned by the list that holds it; a node belongs to at most one list
// at a time.
package list

import "iter"

// Single is a singly-linked list that also tracks its tail for quick
// appends. The zero value is an empty list ready to use.
type Single[T any] struct {
	head, tail *SingleNode[T]
	length     int
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := &SingleNode[T]{Val: v}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.length++
}

// Peek returns the value of the head node or the zero value if the
// list is empty.
func (ls *Single[T]) Peek() (v T) {
	if ls.head == nil {
		return v
	}
	return ls.head.Val
}

// Pop removes the head node and returns its value. It returns false
// if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	ls.length--
	return n.Val, true
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int { return ls.length }

// All returns an iterator over the elements of the list from head to
// tail.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}
