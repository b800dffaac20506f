package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO shared between producers and a single consumer.
// Implementations must be thread-safe.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue without blocking.
	Enqueue(item T) error
	// Size returns the number of pending items.
	Size() int
	// ReadAll removes and returns every pending item, oldest first.
	ReadAll() []T
	// Clear drops every pending item.
	Clear()
}
