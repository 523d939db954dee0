package utils

// Deque is a growable ring buffer. The zero value is ready to use.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

func (d *Deque[T]) Len() int {
	return d.size
}

func (d *Deque[T]) grow() {
	n := len(d.buf) * 2
	if n == 0 {
		n = 16
	}
	buf := make([]T, n)
	for i := 0; i < d.size; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

func (d *Deque[T]) PushBack(item T) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = item
	d.size++
}

// PopFront removes the oldest item. ok is false when empty.
func (d *Deque[T]) PopFront() (item T, ok bool) {
	if d.size == 0 {
		return item, false
	}
	var zero T
	item = d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return item, true
}

func (d *Deque[T]) Front() (item T, ok bool) {
	if d.size == 0 {
		return item, false
	}
	return d.buf[d.head], true
}

func (d *Deque[T]) Reset() {
	var zero T
	for i := range d.buf {
		d.buf[i] = zero
	}
	d.head, d.size = 0, 0
}
