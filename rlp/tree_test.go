package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, Equal(Bytes{}, Bytes(nil)))
	require.True(t, Equal(Bytes("cat"), Bytes("cat")))
	require.False(t, Equal(Bytes("cat"), Bytes("dog")))
	require.False(t, Equal(Bytes{}, List{}))
	require.True(t, Equal(List{}, List(nil)))
	require.True(t, Equal(List{Bytes{1}, List{}}, List{Bytes{1}, List{}}))
	require.False(t, Equal(List{Bytes{1}}, List{Bytes{1}, Bytes{1}}))
	require.False(t, Equal(List{List{}}, List{Bytes{}}))
	require.True(t, Equal(nil, nil))
	require.False(t, Equal(nil, Bytes{}))
}
