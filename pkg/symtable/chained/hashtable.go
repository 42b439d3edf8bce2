// Package chained implements a symbol table as a hash table with
// separate chaining. Buckets grow through a fixed sequence of prime
// capacities as bindings are added and never shrink.
package chained

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/scottcagno/symtable/pkg/alloc"
	"github.com/scottcagno/symtable/pkg/chain"
)

// capacities is the bucket count sequence. The table moves to the next
// entry when the binding count reaches the current one; it stays at the
// last entry for good.
var capacities = [...]int{509, 1021, 2039, 4093, 8191, 16381, 32749, 65521}

// Capacities returns a copy of the bucket count sequence
func Capacities() []int {
	return append([]int(nil), capacities[:]...)
}

// HashTable maps string keys to values of type V. It stores values
// verbatim and never inspects or releases them. A HashTable is not
// safe for concurrent use.
type HashTable[V any] struct {
	conf    *Config
	keys    uint
	step    int
	mapping bool
	freed   bool
	buckets []chain.Chain[V]
}

func headerSize[V any]() uint64 {
	var m HashTable[V]
	return uint64(unsafe.Sizeof(m))
}

func bucketsSize[V any](n int) uint64 {
	return uint64(n) * chain.HeadSize[V]()
}

func allocBuckets[V any](a alloc.Allocator, n int) ([]chain.Chain[V], error) {
	if err := a.Alloc(bucketsSize[V](n)); err != nil {
		return nil, err
	}
	return make([]chain.Chain[V], n), nil
}

// New returns an empty HashTable with 509 buckets. A nil conf uses the
// defaults. The only failure is the allocator refusing the table's
// storage, in which case nothing stays reserved.
func New[V any](conf *Config) (*HashTable[V], error) {
	conf = checkConfig(conf)
	if err := conf.Allocator.Alloc(headerSize[V]()); err != nil {
		return nil, fmt.Errorf("chained: new table: %w", err)
	}
	buckets, err := allocBuckets[V](conf.Allocator, capacities[0])
	if err != nil {
		conf.Allocator.Free(headerSize[V]())
		return nil, fmt.Errorf("chained: new table: %w", err)
	}
	conf.Logger.Debug("new hash table with %d buckets", len(buckets))
	return &HashTable[V]{
		conf:    conf,
		buckets: buckets,
	}, nil
}

func (m *HashTable[V]) mustBeLive() {
	if m == nil {
		panic(ErrNilTable)
	}
	if m.freed {
		panic(ErrTableFreed)
	}
}

func (m *HashTable[V]) mustBeMutable() {
	m.mustBeLive()
	if m.mapping {
		panic(ErrMutatedDuringMap)
	}
}

// bucket returns the chain key hashes to
func (m *HashTable[V]) bucket(key string) *chain.Chain[V] {
	return &m.buckets[m.conf.Hash(key)%uint64(len(m.buckets))]
}

// grow moves every binding into the next larger bucket array when the
// binding count has reached the current bucket count exactly. If the
// allocator refuses the new array the table stays as it is.
func (m *HashTable[V]) grow() {
	if m.step+1 >= len(capacities) || m.keys != uint(len(m.buckets)) {
		return
	}
	size := capacities[m.step+1]
	buckets, err := allocBuckets[V](m.conf.Allocator, size)
	if err != nil {
		m.conf.Logger.Warn("resize from %d to %d buckets abandoned: %v", len(m.buckets), size, err)
		return
	}
	for i := range m.buckets {
		for n := m.buckets[i].Pop(); n != nil; n = m.buckets[i].Pop() {
			buckets[m.conf.Hash(n.Key())%uint64(size)].Push(n)
		}
	}
	m.conf.Allocator.Free(bucketsSize[V](len(m.buckets)))
	m.conf.Logger.Debug("resized from %d to %d buckets at %d bindings", len(m.buckets), size, m.keys)
	m.buckets = buckets
	m.step++
}

// release returns the storage owned by a node that has been unlinked
func (m *HashTable[V]) release(n *chain.Node[V]) {
	m.conf.Allocator.Free(uint64(len(n.Key())))
	m.conf.Allocator.Free(chain.NodeSize[V]())
}

// Len returns the number of bindings in the table
func (m *HashTable[V]) Len() int {
	m.mustBeLive()
	return int(m.keys)
}

// Cap returns the current bucket count
func (m *HashTable[V]) Cap() int {
	m.mustBeLive()
	return len(m.buckets)
}

// PercentFull returns the number of bindings per bucket
func (m *HashTable[V]) PercentFull() float64 {
	m.mustBeLive()
	return float64(m.keys) / float64(len(m.buckets))
}

// Put adds a binding of key to val and returns true. If key is already
// bound, or the allocator refuses the storage for the new binding, the
// table is left unchanged and Put returns false.
func (m *HashTable[V]) Put(key string, val V) bool {
	m.mustBeMutable()
	m.grow()
	b := m.bucket(key)
	if b.Search(key) != nil {
		return false
	}
	if err := m.conf.Allocator.Alloc(chain.NodeSize[V]()); err != nil {
		m.conf.Logger.Debug("put %q refused: %v", key, err)
		return false
	}
	if err := m.conf.Allocator.Alloc(uint64(len(key))); err != nil {
		m.conf.Allocator.Free(chain.NodeSize[V]())
		m.conf.Logger.Debug("put %q refused: %v", key, err)
		return false
	}
	b.Push(chain.NewNode(strings.Clone(key), val))
	m.keys++
	return true
}

// Replace swaps the value bound to key for val and returns the old
// value and true. If key is not bound nothing changes and Replace
// returns the zero value and false.
func (m *HashTable[V]) Replace(key string, val V) (V, bool) {
	m.mustBeLive()
	if n := m.bucket(key).Search(key); n != nil {
		return n.Swap(val), true
	}
	return *new(V), false
}

// Contains reports whether key is bound
func (m *HashTable[V]) Contains(key string) bool {
	m.mustBeLive()
	return m.bucket(key).Search(key) != nil
}

// Get returns the value bound to key, or the zero value and false
func (m *HashTable[V]) Get(key string) (V, bool) {
	m.mustBeLive()
	if n := m.bucket(key).Search(key); n != nil {
		return n.Value(), true
	}
	return *new(V), false
}

// Remove unbinds key and returns the value it was bound to and true,
// or the zero value and false if key was not bound.
func (m *HashTable[V]) Remove(key string) (V, bool) {
	m.mustBeMutable()
	n := m.bucket(key).Unlink(key)
	if n == nil {
		return *new(V), false
	}
	m.release(n)
	m.keys--
	return n.Value(), true
}

// Map calls fn once for every binding, passing extra along. Bindings
// are visited bucket by bucket in no meaningful order. fn may call
// Replace, Get and Contains but must not Put, Remove or Free; doing
// so panics with ErrMutatedDuringMap.
func (m *HashTable[V]) Map(fn chain.ApplyFunc[V], extra any) {
	m.mustBeLive()
	if fn == nil {
		panic(ErrNilApplyFunc)
	}
	m.mapping = true
	defer func() {
		m.mapping = false
	}()
	for i := range m.buckets {
		m.buckets[i].Scan(fn, extra)
	}
}

// Free releases every binding and the table itself. Any use of the
// table afterwards, including a second Free, panics with ErrTableFreed.
func (m *HashTable[V]) Free() {
	m.mustBeMutable()
	released := m.keys
	for i := range m.buckets {
		for n := m.buckets[i].Pop(); n != nil; n = m.buckets[i].Pop() {
			m.release(n)
			m.keys--
		}
	}
	m.conf.Allocator.Free(bucketsSize[V](len(m.buckets)))
	m.conf.Allocator.Free(headerSize[V]())
	m.conf.Logger.Debug("freed hash table with %d buckets and %d bindings", len(m.buckets), released)
	m.buckets = nil
	m.freed = true
}
