// Package recycle provides a growable, exclusively owned element buffer
// whose backing allocation can be reused across element types of identical
// memory layout.
//
// The package targets workloads that repeatedly fill a buffer with
// short-lived values borrowing from transient data (such as zero-copy parse
// results referencing an input chunk), discard them, and refill the buffer
// with a structurally similar type on the next iteration. [Recycle] lets
// such loops run indefinitely on a single allocation.
package recycle

import "slices"

// A Releaser releases resources held by a buffer element. If a buffer's
// element type, or a pointer to it, implements Releaser, [Buffer.Reset]
// calls Release exactly once on each live element before its memory is
// reused.
type Releaser interface {
	Release()
}

// A Buffer is a growable, contiguous sequence of elements of type T.
// A Buffer exclusively owns its backing allocation: it must not be copied
// after first use, and must not be accessed concurrently. The zero value is
// an empty buffer ready for use.
type Buffer[T any] struct {
	elems []T
}

// NewBuffer returns an empty buffer with capacity for at least the given
// number of elements.
func NewBuffer[T any](capacity int) Buffer[T] {
	return Buffer[T]{elems: make([]T, 0, capacity)}
}

// Append appends v to the buffer, growing the backing allocation if needed.
func (b *Buffer[T]) Append(v T) {
	b.elems = append(b.elems, v)
}

// AppendValues appends each value in values to the buffer.
func (b *Buffer[T]) AppendValues(values ...T) {
	b.elems = append(b.elems, values...)
}

// Len returns the number of live elements in the buffer.
func (b *Buffer[T]) Len() int { return len(b.elems) }

// Cap returns the number of elements the backing allocation can hold.
func (b *Buffer[T]) Cap() int { return cap(b.elems) }

// At returns the element at index i, panicking if i is out of range.
func (b *Buffer[T]) At(i int) T { return b.elems[i] }

// Values returns a view of the live elements. The view is only valid until
// the buffer is next mutated.
func (b *Buffer[T]) Values() []T { return b.elems }

// Grow ensures the buffer has room for n more elements without another
// allocation.
func (b *Buffer[T]) Grow(n int) {
	b.elems = slices.Grow(b.elems, n)
}

// Reset destroys all live elements and sets the length to zero, retaining
// the backing allocation. Elements implementing [Releaser] have Release
// called exactly once each; the element memory is then zeroed so that any
// references held by the elements are dropped.
func (b *Buffer[T]) Reset() {
	b.releaseAll()
	clear(b.elems)
	b.elems = b.elems[:0]
}

// releaseAll invokes the Release hook on every live element. The hook is
// detected on T first and then on *T, so value and pointer receivers both
// work. Elements of interface type are only released when T itself is a
// Releaser.
func (b *Buffer[T]) releaseAll() {
	var zero T
	if _, ok := any(zero).(Releaser); ok {
		for i := range b.elems {
			any(b.elems[i]).(Releaser).Release()
		}
		return
	}
	if _, ok := any(&zero).(Releaser); ok {
		for i := range b.elems {
			any(&b.elems[i]).(Releaser).Release()
		}
	}
}

// take transfers the backing slice out of b, leaving b empty and without an
// allocation. Ownership of the returned slice moves to the caller; b remains
// usable and reallocates on its next Append or Grow.
func (b *Buffer[T]) take() []T {
	elems := b.elems
	b.elems = nil
	return elems
}
