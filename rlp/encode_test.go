package rlp

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_EmptyForms(t *testing.T) {
	require.Equal(t, []byte{0x80}, Encode(Bytes{}))
	require.Equal(t, []byte{0x80}, Encode(Bytes(nil)))
	require.Equal(t, []byte{0xc0}, Encode(List{}))
	require.Equal(t, []byte{0xc0}, Encode(List(nil)))
}

func TestEncode_SingleByte(t *testing.T) {
	// Below 0x80 a single byte is its own encoding.
	require.Equal(t, []byte{0x00}, Encode(Bytes{0x00}))
	require.Equal(t, []byte{0x41}, Encode(Bytes{0x41}))
	require.Equal(t, []byte{0x7f}, Encode(Bytes{0x7f}))
	// At or above 0x80 a prefix is required.
	require.Equal(t, []byte{0x81, 0x80}, Encode(Bytes{0x80}))
	require.Equal(t, []byte{0x81, 0xff}, Encode(Bytes{0xff}))
}

func TestEncode_ShortString(t *testing.T) {
	require.Equal(t, []byte{0x83, 'c', 'a', 't'}, Encode(Bytes("cat")))

	max := bytes.Repeat([]byte{0xaa}, 55)
	enc := Encode(Bytes(max))
	require.Equal(t, byte(0x80+55), enc[0])
	require.Equal(t, max, enc[1:])
}

func TestEncode_LongString(t *testing.T) {
	b56 := bytes.Repeat([]byte{0xbb}, 56)
	enc := Encode(Bytes(b56))
	require.Equal(t, []byte{0xb8, 56}, enc[:2])
	require.Equal(t, b56, enc[2:])

	b300 := bytes.Repeat([]byte{0xcc}, 300)
	enc = Encode(Bytes(b300))
	require.Equal(t, []byte{0xb9, 0x01, 0x2c}, enc[:3])
	require.Equal(t, b300, enc[3:])

	// Crossing 65536 needs a three-byte length field.
	b64k := bytes.Repeat([]byte{0xdd}, 65536)
	enc = Encode(Bytes(b64k))
	require.Equal(t, []byte{0xba, 0x01, 0x00, 0x00}, enc[:4])
	require.Equal(t, b64k, enc[4:])
}

func TestEncode_Nesting(t *testing.T) {
	enc := Encode(List{Bytes("cat"), Bytes("dog")})
	require.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, enc)

	// The set-theoretic representation of 3: [ [], [[]], [ [], [[]] ] ].
	enc = Encode(List{List{}, List{List{}}, List{List{}, List{List{}}}})
	require.Equal(t, "c7c0c1c0c3c0c1c0", hex.EncodeToString(enc))
}

func TestEncode_LongList(t *testing.T) {
	var items List
	for i := 0; i < 20; i++ {
		items = append(items, Bytes("abc"))
	}
	enc := Encode(items)
	// 20 items of 4 encoded bytes each: 80-byte payload, long form.
	require.Equal(t, []byte{0xf8, 80}, enc[:2])
	require.Len(t, enc, 82)

	// 8192 items of 9 encoded bytes each: 73728-byte payload, which
	// crosses 65536 into a three-byte length field.
	items = items[:0]
	for i := 0; i < 8192; i++ {
		items = append(items, Bytes("12345678"))
	}
	enc = Encode(items)
	require.Equal(t, []byte{0xfa, 0x01, 0x20, 0x00}, enc[:4])
	require.Len(t, enc, 73732)
}

func TestEncodedLen(t *testing.T) {
	nodes := []Node{
		Bytes{},
		Bytes{0x41},
		Bytes{0x80},
		Bytes(bytes.Repeat([]byte{1}, 300)),
		List{},
		List{Bytes("cat"), List{Bytes("dog")}},
	}
	for _, n := range nodes {
		require.Equal(t, len(Encode(n)), EncodedLen(n))
	}
}
