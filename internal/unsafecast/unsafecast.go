// Package unsafecast holds the module's only unsafe code: generic layout
// queries and the raw reinterpretation of one slice's allocation as another
// element type.
package unsafecast

import "unsafe"

// Sizeof returns the size of T in bytes.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Alignof returns the required alignment of T in bytes.
func Alignof[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// Slice reinterprets the allocation backing in as holding elements of type
// To. It decomposes in to its raw data pointer and capacity and builds a new
// slice from those; the slice header of in is never reinterpreted directly,
// since the header representation is not guaranteed to be identical across
// element types.
//
// The caller must guarantee that From and To have identical size and
// alignment, and that in holds no live elements. The returned slice has
// length 0 and the capacity of in.
func Slice[From, To any](in []From) []To {
	ptr := (*To)(unsafe.Pointer(unsafe.SliceData(in)))
	return unsafe.Slice(ptr, cap(in))[:0]
}

// Pointer returns the address of the allocation backing s, or nil if s has
// no allocation. A slice of zero length still has an address as long as its
// capacity is non-zero.
func Pointer[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}
