// Package alloc accounts for the memory a symbol table owns. Tables
// reserve bytes before they create a node, a key copy or a bucket
// array, and release them when that storage is dropped. An Allocator
// that refuses a reservation stands in for an out of memory condition.
package alloc

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfMemory = errors.New("alloc: out of memory")
	ErrOverRelease = errors.New("alloc: released more bytes than reserved")
)

// Allocator hands out byte reservations
type Allocator interface {
	// Alloc reserves size bytes or returns ErrOutOfMemory
	Alloc(size uint64) error
	// Free returns size previously reserved bytes
	Free(size uint64)
}

type heap struct{}

func (heap) Alloc(uint64) error { return nil }

func (heap) Free(uint64) {}

// Heap is the Allocator tables use by default. It never refuses a
// reservation and keeps no books; the Go runtime owns the memory.
var Heap Allocator = heap{}

// Budget is an Allocator that tracks every reservation and refuses
// any that would push the bytes in use past its limit. A limit of
// zero means unlimited. A Budget is not safe for concurrent use.
type Budget struct {
	limit  uint64
	inuse  uint64
	peak   uint64
	allocs int
	frees  int
	denied int
}

// NewBudget returns a Budget capped at limit bytes
func NewBudget(limit uint64) *Budget {
	return &Budget{limit: limit}
}

func (b *Budget) Alloc(size uint64) error {
	if b.limit > 0 && b.inuse+size > b.limit {
		b.denied++
		return fmt.Errorf("%w: want %d bytes, %d of %d in use", ErrOutOfMemory, size, b.inuse, b.limit)
	}
	b.inuse += size
	b.allocs++
	if b.inuse > b.peak {
		b.peak = b.inuse
	}
	return nil
}

func (b *Budget) Free(size uint64) {
	if size > b.inuse {
		panic(ErrOverRelease)
	}
	b.inuse -= size
	b.frees++
}

// SetLimit changes the cap. Bytes already in use are not affected
// even if they exceed the new limit.
func (b *Budget) SetLimit(limit uint64) {
	b.limit = limit
}

// Limit returns the current cap, zero if unlimited
func (b *Budget) Limit() uint64 {
	return b.limit
}

// InUse returns the number of bytes currently reserved
func (b *Budget) InUse() uint64 {
	return b.inuse
}

// Peak returns the highest InUse value seen
func (b *Budget) Peak() uint64 {
	return b.peak
}

// Allocs returns the number of granted reservations
func (b *Budget) Allocs() int {
	return b.allocs
}

// Frees returns the number of releases
func (b *Budget) Frees() int {
	return b.frees
}

// Denied returns the number of refused reservations
func (b *Budget) Denied() int {
	return b.denied
}

func (b *Budget) String() string {
	return fmt.Sprintf("budget: inuse=%d peak=%d limit=%d allocs=%d frees=%d denied=%d",
		b.inuse, b.peak, b.limit, b.allocs, b.frees, b.denied)
}
