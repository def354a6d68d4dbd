package ringbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBuffer(t *testing.T) {
	rb := New[int](3)
	assert.Zero(t, rb.Size())
	_, ok := rb.Pop()
	assert.False(t, ok)

	for i := range 3 {
		assert.True(t, rb.Push(i))
	}
	assert.True(t, rb.IsFull())
	assert.False(t, rb.Push(3))

	item, ok := rb.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, item)
	assert.True(t, rb.Push(3))

	var drained []int
	for rb.Size() > 0 {
		item, _ := rb.Pop()
		drained = append(drained, item)
	}
	assert.Equal(t, []int{1, 2, 3}, drained)
}

func TestRingBufferZeroCapacity(t *testing.T) {
	rb := New[string](0)
	assert.True(t, rb.Push("a"))
	assert.True(t, rb.IsFull())
	assert.False(t, rb.Push("b"))
}
