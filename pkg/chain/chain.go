// Package chain provides the singly linked list of key/value bindings
// that both symbol table strategies are built from. A Chain owns its
// nodes; a node belongs to exactly one chain at a time.
package chain

import "unsafe"

// ApplyFunc is called once for every binding visited by a traversal.
// extra is passed through untouched from the caller.
type ApplyFunc[V any] func(key string, val V, extra any)

// Node is a single binding in a chain
type Node[V any] struct {
	key  string
	val  V
	next *Node[V]
}

// NewNode returns a detached node holding key and val. The key is
// expected to already be owned by the caller.
func NewNode[V any](key string, val V) *Node[V] {
	return &Node[V]{
		key: key,
		val: val,
	}
}

// Key returns the binding's key
func (n *Node[V]) Key() string {
	return n.key
}

// Value returns the binding's value
func (n *Node[V]) Value() V {
	return n.val
}

// Swap stores val in the node and returns the previous value
func (n *Node[V]) Swap(val V) V {
	old := n.val
	n.val = val
	return old
}

// NodeSize reports how many bytes a node for value type V occupies,
// not counting the key's backing storage.
func NodeSize[V any]() uint64 {
	var n Node[V]
	return uint64(unsafe.Sizeof(n))
}

// HeadSize reports how many bytes an empty Chain occupies. A bucket
// array of n chains occupies n*HeadSize bytes.
func HeadSize[V any]() uint64 {
	var c Chain[V]
	return uint64(unsafe.Sizeof(c))
}

// Chain is a singly linked list of nodes. The zero value is an
// empty chain ready to use.
type Chain[V any] struct {
	head *Node[V]
}

// Empty reports whether the chain holds no nodes
func (c *Chain[V]) Empty() bool {
	return c.head == nil
}

// Push links n in at the front of the chain
func (c *Chain[V]) Push(n *Node[V]) {
	n.next = c.head
	c.head = n
}

// Pop unlinks and returns the front node, or nil if the chain is empty
func (c *Chain[V]) Pop() *Node[V] {
	n := c.head
	if n == nil {
		return nil
	}
	c.head = n.next
	n.next = nil
	return n
}

// Search returns the node holding key, or nil
func (c *Chain[V]) Search(key string) *Node[V] {
	for current := c.head; current != nil; current = current.next {
		if current.key == key {
			return current
		}
	}
	return nil
}

// Unlink removes the node holding key from the chain and returns
// it, or returns nil if no such node exists.
func (c *Chain[V]) Unlink(key string) *Node[V] {
	if c.head == nil {
		return nil
	}
	if c.head.key == key {
		return c.Pop()
	}
	previous := c.head
	for previous.next != nil {
		if previous.next.key == key {
			n := previous.next
			previous.next = n.next
			n.next = nil
			return n
		}
		previous = previous.next
	}
	return nil
}

// Scan calls fn for every node from front to back
func (c *Chain[V]) Scan(fn ApplyFunc[V], extra any) {
	for current := c.head; current != nil; current = current.next {
		fn(current.key, current.val, extra)
	}
}

// Len counts the nodes in the chain. It walks the whole chain.
func (c *Chain[V]) Len() int {
	var count int
	for current := c.head; current != nil; current = current.next {
		count++
	}
	return count
}
