package recycle

import (
	"fmt"

	"github.com/golddranks/recycle/internal/unsafecast"
)

// Recycle consumes buf and returns an empty buffer of element type To backed
// by the same allocation. The returned buffer has length 0 and the capacity
// of buf; buf is left empty with no allocation, and reallocates if used
// again.
//
// From and To must have identical size and alignment. Go's type system
// cannot express that constraint statically, so Recycle panics on a
// mismatch: an incompatible pair is a programming error, not a condition for
// callers to handle.
//
// All live elements of buf are destroyed before the allocation is
// reinterpreted, exactly as by [Buffer.Reset]: Release hooks run and the
// element memory is zeroed. This happens even when buf is already empty, and
// regardless of whether the caller has cleared it, so values of one type are
// never observable through the other.
func Recycle[To any, From any](buf *Buffer[From]) Buffer[To] {
	buf.Reset()
	assertSameLayout[From, To]()
	return Buffer[To]{elems: unsafecast.Slice[From, To](buf.take())}
}

func assertSameLayout[From, To any]() {
	var (
		fromSize  = unsafecast.Sizeof[From]()
		toSize    = unsafecast.Sizeof[To]()
		fromAlign = unsafecast.Alignof[From]()
		toAlign   = unsafecast.Alignof[To]()
	)
	if fromSize != toSize || fromAlign != toAlign {
		var from From
		var to To
		panic(fmt.Sprintf("recycle: incompatible element layouts: %T (size %d, align %d) vs %T (size %d, align %d)",
			from, fromSize, fromAlign, to, toSize, toAlign))
	}
}
