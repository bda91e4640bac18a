package codec

import "rlpwire/rlp"

// SliceOf maps a homogeneous slice onto a List node, each element through
// elem. A nil slice round-trips as an empty one.
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	return sliceCodec[T]{elem: elem}
}

type sliceCodec[T any] struct {
	elem Codec[T]
}

func (c sliceCodec[T]) ToNode(vs []T) rlp.Node {
	items := rlp.List{}
	for _, v := range vs {
		items = append(items, c.elem.ToNode(v))
	}
	return items
}

func (c sliceCodec[T]) FromNode(n rlp.Node) ([]T, error) {
	items, ok := n.(rlp.List)
	if !ok {
		return nil, shapeErrf("expected list, got %T", n)
	}
	vs := make([]T, 0, len(items))
	for i, item := range items {
		v, err := c.elem.FromNode(item)
		if err != nil {
			return nil, shapeErrf("element %d: %v", i, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// OptionalOf maps a present value through elem, decoding it into a
// non-nil pointer. Absence has no canonical encoding - how a missing
// value is framed is up to the composing type - so encoding a nil
// pointer is a precondition violation and panics.
func OptionalOf[T any](elem Codec[T]) Codec[*T] {
	return optionalCodec[T]{elem: elem}
}

type optionalCodec[T any] struct {
	elem Codec[T]
}

func (c optionalCodec[T]) ToNode(v *T) rlp.Node {
	if v == nil {
		panic("codec: absent optional has no encoding")
	}
	return c.elem.ToNode(*v)
}

func (c optionalCodec[T]) FromNode(n rlp.Node) (*T, error) {
	v, err := c.elem.FromNode(n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func tupleItems(n rlp.Node, arity int) (rlp.List, error) {
	items, ok := n.(rlp.List)
	if !ok {
		return nil, shapeErrf("expected list of length %d, got %T", arity, n)
	}
	if len(items) != arity {
		return nil, shapeErrf("expected list of length %d, got length %d", arity, len(items))
	}
	return items, nil
}

// Tuple2 maps a two-slot product type onto a List of its slots. The
// caller supplies per-slot codecs along with pack/unpack functions
// projecting the Go type onto the slots. FromNode demands a List of
// exactly matching arity. Tuple3 through Tuple6 follow the same scheme.
func Tuple2[T, A, B any](
	ca Codec[A], cb Codec[B],
	pack func(A, B) T,
	unpack func(T) (A, B),
) Codec[T] {
	return tupleCodec[T]{
		enc: func(v T) rlp.Node {
			a, b := unpack(v)
			return rlp.List{ca.ToNode(a), cb.ToNode(b)}
		},
		dec: func(n rlp.Node) (T, error) {
			var zero T
			items, err := tupleItems(n, 2)
			if err != nil {
				return zero, err
			}
			a, err := slot(ca, items, 0)
			if err != nil {
				return zero, err
			}
			b, err := slot(cb, items, 1)
			if err != nil {
				return zero, err
			}
			return pack(a, b), nil
		},
	}
}

func Tuple3[T, A, B, C any](
	ca Codec[A], cb Codec[B], cc Codec[C],
	pack func(A, B, C) T,
	unpack func(T) (A, B, C),
) Codec[T] {
	return tupleCodec[T]{
		enc: func(v T) rlp.Node {
			a, b, c := unpack(v)
			return rlp.List{ca.ToNode(a), cb.ToNode(b), cc.ToNode(c)}
		},
		dec: func(n rlp.Node) (T, error) {
			var zero T
			items, err := tupleItems(n, 3)
			if err != nil {
				return zero, err
			}
			a, err := slot(ca, items, 0)
			if err != nil {
				return zero, err
			}
			b, err := slot(cb, items, 1)
			if err != nil {
				return zero, err
			}
			c, err := slot(cc, items, 2)
			if err != nil {
				return zero, err
			}
			return pack(a, b, c), nil
		},
	}
}

func Tuple4[T, A, B, C, D any](
	ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D],
	pack func(A, B, C, D) T,
	unpack func(T) (A, B, C, D),
) Codec[T] {
	return tupleCodec[T]{
		enc: func(v T) rlp.Node {
			a, b, c, d := unpack(v)
			return rlp.List{ca.ToNode(a), cb.ToNode(b), cc.ToNode(c), cd.ToNode(d)}
		},
		dec: func(n rlp.Node) (T, error) {
			var zero T
			items, err := tupleItems(n, 4)
			if err != nil {
				return zero, err
			}
			a, err := slot(ca, items, 0)
			if err != nil {
				return zero, err
			}
			b, err := slot(cb, items, 1)
			if err != nil {
				return zero, err
			}
			c, err := slot(cc, items, 2)
			if err != nil {
				return zero, err
			}
			d, err := slot(cd, items, 3)
			if err != nil {
				return zero, err
			}
			return pack(a, b, c, d), nil
		},
	}
}

func Tuple5[T, A, B, C, D, E any](
	ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D], ce Codec[E],
	pack func(A, B, C, D, E) T,
	unpack func(T) (A, B, C, D, E),
) Codec[T] {
	return tupleCodec[T]{
		enc: func(v T) rlp.Node {
			a, b, c, d, e := unpack(v)
			return rlp.List{ca.ToNode(a), cb.ToNode(b), cc.ToNode(c), cd.ToNode(d), ce.ToNode(e)}
		},
		dec: func(n rlp.Node) (T, error) {
			var zero T
			items, err := tupleItems(n, 5)
			if err != nil {
				return zero, err
			}
			a, err := slot(ca, items, 0)
			if err != nil {
				return zero, err
			}
			b, err := slot(cb, items, 1)
			if err != nil {
				return zero, err
			}
			c, err := slot(cc, items, 2)
			if err != nil {
				return zero, err
			}
			d, err := slot(cd, items, 3)
			if err != nil {
				return zero, err
			}
			e, err := slot(ce, items, 4)
			if err != nil {
				return zero, err
			}
			return pack(a, b, c, d, e), nil
		},
	}
}

func Tuple6[T, A, B, C, D, E, F any](
	ca Codec[A], cb Codec[B], cc Codec[C], cd Codec[D], ce Codec[E], cf Codec[F],
	pack func(A, B, C, D, E, F) T,
	unpack func(T) (A, B, C, D, E, F),
) Codec[T] {
	return tupleCodec[T]{
		enc: func(v T) rlp.Node {
			a, b, c, d, e, f := unpack(v)
			return rlp.List{ca.ToNode(a), cb.ToNode(b), cc.ToNode(c), cd.ToNode(d), ce.ToNode(e), cf.ToNode(f)}
		},
		dec: func(n rlp.Node) (T, error) {
			var zero T
			items, err := tupleItems(n, 6)
			if err != nil {
				return zero, err
			}
			a, err := slot(ca, items, 0)
			if err != nil {
				return zero, err
			}
			b, err := slot(cb, items, 1)
			if err != nil {
				return zero, err
			}
			c, err := slot(cc, items, 2)
			if err != nil {
				return zero, err
			}
			d, err := slot(cd, items, 3)
			if err != nil {
				return zero, err
			}
			e, err := slot(ce, items, 4)
			if err != nil {
				return zero, err
			}
			f, err := slot(cf, items, 5)
			if err != nil {
				return zero, err
			}
			return pack(a, b, c, d, e, f), nil
		},
	}
}

func slot[T any](c Codec[T], items rlp.List, i int) (T, error) {
	v, err := c.FromNode(items[i])
	if err != nil {
		var zero T
		return zero, shapeErrf("slot %d: %v", i, err)
	}
	return v, nil
}

type tupleCodec[T any] struct {
	enc func(T) rlp.Node
	dec func(rlp.Node) (T, error)
}

func (c tupleCodec[T]) ToNode(v T) rlp.Node            { return c.enc(v) }
func (c tupleCodec[T]) FromNode(n rlp.Node) (T, error) { return c.dec(n) }
