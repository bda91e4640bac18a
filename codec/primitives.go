package codec

import (
	"math/bits"

	"rlpwire/rlp"
)

// Raw is the identity codec: the tree itself.
func Raw() Codec[rlp.Node] { return rawCodec{} }

type rawCodec struct{}

func (rawCodec) ToNode(n rlp.Node) rlp.Node { return n }

func (rawCodec) FromNode(n rlp.Node) (rlp.Node, error) {
	if n == nil {
		return nil, shapeErrf("nil node")
	}
	return n, nil
}

// Bytes maps a byte slice onto a Bytes node.
func Bytes() Codec[[]byte] { return bytesCodec{} }

type bytesCodec struct{}

func (bytesCodec) ToNode(b []byte) rlp.Node { return rlp.Bytes(b) }

func (bytesCodec) FromNode(n rlp.Node) ([]byte, error) {
	b, ok := n.(rlp.Bytes)
	if !ok {
		return nil, shapeErrf("expected byte string, got %T", n)
	}
	return b, nil
}

// String maps a string onto a Bytes node holding its raw octets.
func String() Codec[string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) ToNode(s string) rlp.Node { return rlp.Bytes(s) }

func (stringCodec) FromNode(n rlp.Node) (string, error) {
	b, ok := n.(rlp.Bytes)
	if !ok {
		return "", shapeErrf("expected byte string, got %T", n)
	}
	return string(b), nil
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Uint maps an unsigned integer onto a Bytes node holding its minimal
// big-endian representation. Zero maps to the empty byte string. Decoding
// rejects representations with a leading zero byte or too many bytes for
// the target width.
func Uint[T unsigned]() Codec[T] { return uintCodec[T]{} }

type uintCodec[T unsigned] struct{}

func (uintCodec[T]) ToNode(v T) rlp.Node {
	return rlp.Bytes(rlp.AppendUint64(nil, uint64(v)))
}

func (uintCodec[T]) FromNode(n rlp.Node) (T, error) {
	b, ok := n.(rlp.Bytes)
	if !ok {
		return 0, shapeErrf("expected integer byte string, got %T", n)
	}
	x, err := rlp.Uint64FromBytes(b)
	if err != nil {
		return 0, shapeErrf("%v", err)
	}
	var max T
	max--
	if x > uint64(max) {
		return 0, shapeErrf("integer %d overflows %d-bit target", x, bits.Len64(uint64(max)))
	}
	return T(x), nil
}

// Bool maps true onto Bytes{1} and false onto Bytes{0}. Decoding is
// strict: any node other than those two is a shape error.
func Bool() Codec[bool] { return boolCodec{} }

type boolCodec struct{}

var (
	trueNode  = rlp.Bytes{0x01}
	falseNode = rlp.Bytes{0x00}
)

func (boolCodec) ToNode(v bool) rlp.Node {
	if v {
		return trueNode
	}
	return falseNode
}

func (boolCodec) FromNode(n rlp.Node) (bool, error) {
	switch {
	case rlp.Equal(n, trueNode):
		return true, nil
	case rlp.Equal(n, falseNode):
		return false, nil
	default:
		return false, shapeErrf("expected boolean node")
	}
}
