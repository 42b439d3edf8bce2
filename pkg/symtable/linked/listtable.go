// Package linked implements a symbol table as a single unordered
// linked list. Every operation is a linear scan; it is the reference
// the hash table is checked against.
package linked

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/scottcagno/symtable/pkg/chain"
)

// ListTable maps string keys to values of type V
type ListTable[V any] struct {
	conf    *Config
	keys    uint
	mapping bool
	freed   bool
	list    chain.Chain[V]
}

func headerSize[V any]() uint64 {
	var t ListTable[V]
	return uint64(unsafe.Sizeof(t))
}

// New returns an empty ListTable. A nil conf uses the defaults.
func New[V any](conf *Config) (*ListTable[V], error) {
	conf = checkConfig(conf)
	if err := conf.Allocator.Alloc(headerSize[V]()); err != nil {
		return nil, fmt.Errorf("linked: new table: %w", err)
	}
	conf.Logger.Debug("new list table")
	return &ListTable[V]{conf: conf}, nil
}

func (t *ListTable[V]) mustBeLive() {
	if t == nil {
		panic(ErrNilTable)
	}
	if t.freed {
		panic(ErrTableFreed)
	}
}

func (t *ListTable[V]) mustBeMutable() {
	t.mustBeLive()
	if t.mapping {
		panic(ErrMutatedDuringMap)
	}
}

func (t *ListTable[V]) release(n *chain.Node[V]) {
	t.conf.Allocator.Free(uint64(len(n.Key())))
	t.conf.Allocator.Free(chain.NodeSize[V]())
}

func (t *ListTable[V]) Len() int {
	t.mustBeLive()
	return int(t.keys)
}

// Put prepends a binding of key to val and returns true, unless key is
// already bound or the allocator refuses the storage.
func (t *ListTable[V]) Put(key string, val V) bool {
	t.mustBeMutable()
	if t.list.Search(key) != nil {
		return false
	}
	if err := t.conf.Allocator.Alloc(chain.NodeSize[V]()); err != nil {
		t.conf.Logger.Debug("put %q refused: %v", key, err)
		return false
	}
	if err := t.conf.Allocator.Alloc(uint64(len(key))); err != nil {
		t.conf.Allocator.Free(chain.NodeSize[V]())
		t.conf.Logger.Debug("put %q refused: %v", key, err)
		return false
	}
	t.list.Push(chain.NewNode(strings.Clone(key), val))
	t.keys++
	return true
}

func (t *ListTable[V]) Replace(key string, val V) (V, bool) {
	t.mustBeLive()
	if n := t.list.Search(key); n != nil {
		return n.Swap(val), true
	}
	return *new(V), false
}

func (t *ListTable[V]) Contains(key string) bool {
	t.mustBeLive()
	return t.list.Search(key) != nil
}

func (t *ListTable[V]) Get(key string) (V, bool) {
	t.mustBeLive()
	if n := t.list.Search(key); n != nil {
		return n.Value(), true
	}
	return *new(V), false
}

func (t *ListTable[V]) Remove(key string) (V, bool) {
	t.mustBeMutable()
	n := t.list.Unlink(key)
	if n == nil {
		return *new(V), false
	}
	t.release(n)
	t.keys--
	return n.Value(), true
}

// Map calls fn for every binding, most recently added first. The same
// restrictions on fn apply as for the hash table.
func (t *ListTable[V]) Map(fn chain.ApplyFunc[V], extra any) {
	t.mustBeLive()
	if fn == nil {
		panic(ErrNilApplyFunc)
	}
	t.mapping = true
	defer func() {
		t.mapping = false
	}()
	t.list.Scan(fn, extra)
}

// Free releases every binding and the table. Later calls panic.
func (t *ListTable[V]) Free() {
	t.mustBeMutable()
	for n := t.list.Pop(); n != nil; n = t.list.Pop() {
		t.release(n)
	}
	t.conf.Allocator.Free(headerSize[V]())
	t.conf.Logger.Debug("freed list table with %d bindings", t.keys)
	t.keys = 0
	t.freed = true
}
