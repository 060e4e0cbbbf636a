// Package Queues holds the FIFO used for breadth first walks of a tree.
package Queues

// Queue hands items back in the order they were pushed.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Fails with EmptyQueueError when there is none.
	Pop() (T, error)
	// Peek at the oldest item without removing it. Zero value when empty.
	Peek() T
	Empty() bool
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct{}

func (e *EmptyQueueError) Error() string {
	return "Queues: pop from empty queue"
}
