package Queues

// ringQueue is a growable ring buffer. head is the index of the oldest item,
// tail the index the next Push writes to.
type ringQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
// A zero initCap is rounded up to 1.
func MakeArrayQueue[T any](initCap uint) Queue[T] {
	return &ringQueue[T]{content: make([]T, initCap|1)}
}

func (q *ringQueue[T]) Empty() bool {
	return q.sz == 0
}

// resize copies the items, oldest first, to a buffer of newLen >= sz slots.
func (q *ringQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.sz > 0 {
		if q.head < q.tail {
			copy(nc, q.content[q.head:q.tail])
		} else {
			n := copy(nc, q.content[q.head:])
			copy(nc[n:], q.content[:q.tail])
		}
	}
	q.content = nc
	q.head, q.tail = 0, q.sz%newLen
}

// Push item to the tail. Grows by half when full.
// Time: amortized O(1)
func (q *ringQueue[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz + q.sz>>1 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *ringQueue[T]) Pop() (T, error) {
	if q.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return t, nil
}

func (q *ringQueue[T]) Peek() T {
	if q.Empty() {
		return *new(T)
	}
	return q.content[q.head]
}
