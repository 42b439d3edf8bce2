// Package symtable defines an unordered map from string keys to values
// of any type, with two interchangeable strategies: a chained hash
// table and a linked list.
//
// A SymTable is not safe for concurrent use. Callers sharing one
// between goroutines must serialize every call themselves.
package symtable

import (
	"github.com/scottcagno/symtable/pkg/chain"
	"github.com/scottcagno/symtable/pkg/symtable/chained"
	"github.com/scottcagno/symtable/pkg/symtable/linked"
)

// SymTable is the operation set both strategies implement
type SymTable[V any] interface {
	Len() int
	Put(key string, val V) bool
	Replace(key string, val V) (V, bool)
	Contains(key string) bool
	Get(key string) (V, bool)
	Remove(key string) (V, bool)
	Map(fn chain.ApplyFunc[V], extra any)
	Free()
}

var (
	_ SymTable[any] = (*chained.HashTable[any])(nil)
	_ SymTable[any] = (*linked.ListTable[any])(nil)
)

// NewHash returns an empty hash table backed SymTable
func NewHash[V any]() (SymTable[V], error) {
	m, err := chained.New[V](nil)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewList returns an empty list backed SymTable
func NewList[V any]() (SymTable[V], error) {
	l, err := linked.New[V](nil)
	if err != nil {
		return nil, err
	}
	return l, nil
}
