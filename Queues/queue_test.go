package Queues

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _R = rand.New(rand.NewSource(0))

func TestArrayQueuePopEmpty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	assert.True(t, q.Empty())

	_, err := q.Pop()
	var empty *EmptyQueueError
	assert.True(t, errors.As(err, &empty))
	assert.Equal(t, 0, q.Peek())
}

func TestArrayQueueFIFO(t *testing.T) {
	q := MakeArrayQueue[int](2)
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	assert.Equal(t, 0, q.Peek())

	for i := 0; i < 100; i++ {
		require.Equal(t, i, q.Peek())
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
}

// interleaved pushes and pops make the ring wrap around before growing.
func TestArrayQueueWrapAround(t *testing.T) {
	q := MakeArrayQueue[int](4)
	var want []int
	next := 0
	for range 2000 {
		if _R.Intn(3) > 0 {
			q.Push(next)
			want = append(want, next)
			next++
		} else if len(want) > 0 {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want[0], v)
			want = want[1:]
		}
		require.Equal(t, len(want) == 0, q.Empty())
	}
	for _, w := range want {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, w, v)
	}
	assert.True(t, q.Empty())
}

// a ring that is full with head past index 0 must keep its order when it grows.
func TestArrayQueueGrowWhileWrapped(t *testing.T) {
	q := MakeArrayQueue[string](3)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Pop()
	q.Push("d")
	q.Push("e")

	for _, w := range []string{"b", "c", "d", "e"} {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, w, v)
	}
}
