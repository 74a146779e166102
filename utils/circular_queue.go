package utils

import (
	"iter"

	"github.com/oomph-ac/wallrun/oerror"
)

// CircularQueue is a fixed capacity FIFO queue. Appending to a full queue overwrites the
// oldest element.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	len   int
}

// NewCircularQueue creates a queue able to hold capacity items.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Len returns the amount of items currently in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.len
}

// Cap returns the maximum number of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Full returns true if the next Append will overwrite the oldest item.
func (q *CircularQueue[T]) Full() bool {
	return q.len == len(q.items)
}

// Get returns the element at logical position index (0 = oldest), or an error if out of range.
func (q *CircularQueue[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.len {
		return zero, oerror.New("circularQueue: get index %d out of range [0, %d)", index, q.len)
	}
	return q.items[(q.head+index)%len(q.items)], nil
}

// Peek returns the oldest element without removing it.
func (q *CircularQueue[T]) Peek() (item T, ok bool) {
	if q.len == 0 {
		return item, false
	}
	return q.items[q.head], true
}

// Iter iterates over the queue from the oldest to the newest element.
func (q *CircularQueue[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for index := range q.len {
			if !yield(index, q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Pop removes and returns the oldest element. The boolean ok is false if the
// queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.len == 0 {
		return item, false
	}
	var zero T
	item = q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.len--
	return item, true
}

// PopWhile removes elements from the front of the queue for as long as f returns true, and
// returns the amount of elements removed.
func (q *CircularQueue[T]) PopWhile(f func(T) bool) int {
	removed := 0
	for {
		item, ok := q.Peek()
		if !ok || !f(item) {
			return removed
		}
		q.Pop()
		removed++
	}
}

// Append appends an item or returns an error if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) error {
	if len(q.items) == 0 {
		return oerror.New("circularQueue: append on zero-capacity queue")
	}

	q.items[q.tail] = item
	if q.len == len(q.items) {
		// Full: the oldest element at head was just overwritten.
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.len++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return nil
}

// Clear removes every element from the queue.
func (q *CircularQueue[T]) Clear() {
	clear(q.items)
	q.head, q.tail, q.len = 0, 0, 0
}
