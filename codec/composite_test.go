package codec

import (
	"testing"

	"rlpwire/rlp"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSliceOf_RoundTrip(t *testing.T) {
	c := SliceOf(String())

	got, err := Deserialize(c, Serialize(c, []string{"cat", "dog"}))
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog"}, got)

	// The cat/dog list is the canonical nesting example.
	require.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, Serialize(c, []string{"cat", "dog"}))

	got, err = Deserialize(c, Serialize(c, nil))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSliceOf_Nested(t *testing.T) {
	c := SliceOf(SliceOf(Uint[uint64]()))
	v := [][]uint64{{}, {1}, {2, 3, 256}}
	got, err := Deserialize(c, Serialize(c, v))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestSliceOf_ShapeMismatch(t *testing.T) {
	c := SliceOf(String())
	_, err := c.FromNode(rlp.Bytes("cat"))
	require.True(t, errors.Is(err, ErrShape))
	_, err = c.FromNode(rlp.List{rlp.List{}})
	require.True(t, errors.Is(err, ErrShape))
}

func TestOptionalOf(t *testing.T) {
	c := OptionalOf(String())

	v := "cat"
	got, err := Deserialize(c, Serialize(c, &v))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "cat", *got)

	_, err = c.FromNode(rlp.List{})
	require.True(t, errors.Is(err, ErrShape))

	require.Panics(t, func() {
		c.ToNode(nil)
	})
}

type rgb struct {
	R, G, B uint8
}

func rgbCodec() Codec[rgb] {
	u8 := Uint[uint8]()
	return Tuple3(u8, u8, u8,
		func(r, g, b uint8) rgb { return rgb{R: r, G: g, B: b} },
		func(c rgb) (uint8, uint8, uint8) { return c.R, c.G, c.B },
	)
}

func TestTuple3_RoundTrip(t *testing.T) {
	c := rgbCodec()
	for _, v := range []rgb{{}, {1, 2, 3}, {255, 0, 128}} {
		got, err := Deserialize(c, Serialize(c, v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestTuple_ArityMismatch(t *testing.T) {
	c := rgbCodec()
	_, err := c.FromNode(rlp.List{rlp.Bytes{1}, rlp.Bytes{2}})
	require.True(t, errors.Is(err, ErrShape))
	_, err = c.FromNode(rlp.List{rlp.Bytes{1}, rlp.Bytes{2}, rlp.Bytes{3}, rlp.Bytes{4}})
	require.True(t, errors.Is(err, ErrShape))
	_, err = c.FromNode(rlp.Bytes{1})
	require.True(t, errors.Is(err, ErrShape))
}

func TestTuple_SlotMismatch(t *testing.T) {
	c := rgbCodec()
	_, err := c.FromNode(rlp.List{rlp.Bytes{1}, rlp.List{}, rlp.Bytes{3}})
	require.True(t, errors.Is(err, ErrShape))
}

func TestTuple6_RoundTrip(t *testing.T) {
	type wide struct {
		A uint64
		B string
		C bool
		D []byte
		E []uint64
		F uint8
	}
	c := Tuple6(Uint[uint64](), String(), Bool(), Bytes(), SliceOf(Uint[uint64]()), Uint[uint8](),
		func(a uint64, b string, cc bool, d []byte, e []uint64, f uint8) wide {
			return wide{a, b, cc, d, e, f}
		},
		func(v wide) (uint64, string, bool, []byte, []uint64, uint8) {
			return v.A, v.B, v.C, v.D, v.E, v.F
		},
	)
	v := wide{42, "cat", true, []byte{0x80}, []uint64{0, 1, 300}, 7}
	got, err := Deserialize(c, Serialize(c, v))
	require.NoError(t, err)
	require.Equal(t, v, got)
}
