/*
Package codec maps Go types onto the RLP tree model.

A Codec[T] is the capability a type needs to travel through the rlp
package: ToNode projects a value onto the tree, FromNode recovers it.
Built-in codecs cover byte strings, unsigned integers, booleans,
homogeneous slices, fixed-arity products and optional values, and compose
recursively.

Every codec must satisfy FromNode(ToNode(v)) == v. The reverse direction
does not hold in general: a tree can have shapes the target type rejects.
When FromNode is handed such a tree it returns an error wrapping ErrShape.
That is a contract violation by the caller, not a property of the input
bytes; untrusted input that decodes to a structurally valid tree can
still have the wrong shape for a given type.

The wire format carries no type discriminator, so a sum type with more
than one constructor must not map directly through this layer: two
alternatives with the same tree shape cannot be told apart on the way
back. Such types should prepend an explicit tag field of their own before
delegating here.
*/
package codec

import (
	"rlpwire/rlp"

	"github.com/pkg/errors"
)

// ErrShape is wrapped by every FromNode failure: the node is a valid
// tree, but its shape does not match the target type.
var ErrShape = errors.New("codec: node shape does not match target type")

// Codec converts values of a single Go type to and from their tree
// representation.
type Codec[T any] interface {
	// ToNode projects v onto the tree model. It is total.
	ToNode(v T) rlp.Node
	// FromNode recovers a value from its tree representation. A node
	// of the wrong shape is an error wrapping ErrShape.
	FromNode(n rlp.Node) (T, error)
}

// Serialize encodes v to its canonical byte sequence.
func Serialize[T any](c Codec[T], v T) []byte {
	return rlp.Encode(c.ToNode(v))
}

// Deserialize decodes b and maps the resulting tree back through c.
// Malformed input surfaces the rlp package's decode errors; a
// structurally valid tree of the wrong shape surfaces ErrShape. The two
// classes stay distinguishable with errors.Is.
func Deserialize[T any](c Codec[T], b []byte) (T, error) {
	n, err := rlp.Decode(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.FromNode(n)
}

func shapeErrf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrShape, format, args...)
}
