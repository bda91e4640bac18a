package rlp

import "bytes"

// Node is a value in the RLP data model. There are exactly two kinds of
// node: Bytes, an opaque octet string, and List, an ordered sequence of
// nodes. Every encodable value is projected onto this shape before hitting
// the wire, and decoding can recover only this shape - the wire format
// carries no type information beyond the two variants.
type Node interface {
	node()
}

// Bytes is an opaque octet-string node. It may be empty.
type Bytes []byte

// List is an ordered sequence of nodes. Item order is significant and is
// preserved exactly by the codec.
type List []Node

func (Bytes) node() {}
func (List) node()  {}

// Equal reports whether two nodes are structurally equal: same variant and
// recursively equal content. A nil Bytes and an empty Bytes are equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
