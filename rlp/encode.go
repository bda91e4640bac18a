package rlp

import "math/bits"

const (
	shortBytesCode = 0x80
	longBytesCode  = 0xb7
	shortListCode  = 0xc0
	longListCode   = 0xf7

	// maxShortLen is the largest payload length expressible in a
	// single prefix byte.
	maxShortLen = 55
)

// Encode returns the canonical RLP encoding of n. It is total and
// deterministic: every node has exactly one encoding. A nil node is a
// programming error and panics.
func Encode(n Node) []byte {
	return AppendNode(make([]byte, 0, EncodedLen(n)), n)
}

// EncodedLen returns the number of bytes Encode will produce for n
// without encoding it.
func EncodedLen(n Node) int {
	switch v := n.(type) {
	case Bytes:
		if len(v) == 1 && v[0] < shortBytesCode {
			return 1
		}
		return headLen(len(v)) + len(v)
	case List:
		size := 0
		for _, item := range v {
			size += EncodedLen(item)
		}
		return headLen(size) + size
	}
	panic("rlp: cannot encode nil node")
}

// AppendNode appends the canonical encoding of n to dst and returns the
// extended slice.
func AppendNode(dst []byte, n Node) []byte {
	switch v := n.(type) {
	case Bytes:
		// A single byte below 0x80 is its own encoding.
		if len(v) == 1 && v[0] < shortBytesCode {
			return append(dst, v[0])
		}
		dst = appendHead(dst, shortBytesCode, longBytesCode, len(v))
		return append(dst, v...)
	case List:
		size := 0
		for _, item := range v {
			size += EncodedLen(item)
		}
		dst = appendHead(dst, shortListCode, longListCode, size)
		for _, item := range v {
			dst = AppendNode(dst, item)
		}
		return dst
	}
	panic("rlp: cannot encode nil node")
}

func appendHead(dst []byte, short, long byte, size int) []byte {
	if size <= maxShortLen {
		return append(dst, short+byte(size))
	}
	dst = append(dst, long+byte(beLen(uint64(size))))
	return AppendUint64(dst, uint64(size))
}

func headLen(size int) int {
	if size <= maxShortLen {
		return 1
	}
	return 1 + beLen(uint64(size))
}

// beLen returns the minimal number of big-endian bytes needed to hold x.
// beLen(0) is 0.
func beLen(x uint64) int {
	return (bits.Len64(x) + 7) / 8
}
