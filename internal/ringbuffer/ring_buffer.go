package ringbuffer

// RingBuffer is a fixed capacity FIFO queue.
type RingBuffer[T any] struct {
	buf  []T
	head int
	tail int
	size int
}

// New creates a RingBuffer with the given capacity.
// A capacity of 1 is used if the given value is zero.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

// Size returns the number of queued items.
func (r *RingBuffer[T]) Size() int {
	return r.size
}

// IsFull reports whether another Push would be rejected.
func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buf)
}

// Push appends item at the tail. It returns false when the buffer is full.
func (r *RingBuffer[T]) Push(item T) bool {
	if r.IsFull() {
		return false
	}

	r.buf[r.tail] = item
	r.tail = (r.tail + 1) % len(r.buf)
	r.size++
	return true
}

// Pop removes and returns the item at the head, the oldest one pushed.
func (r *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	item := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return item, true
}
