package rlp

import "github.com/pkg/errors"

var (
	// ErrCanonInt is returned when an integer's byte representation has
	// a leading zero byte.
	ErrCanonInt = errors.New("rlp: non-canonical integer")
	// ErrIntOverflow is returned when an integer's byte representation
	// is wider than 8 bytes.
	ErrIntOverflow = errors.New("rlp: integer larger than 64 bits")
)

// AppendUint64 appends the minimal big-endian representation of x to dst.
// Zero appends nothing: its minimal representation is the empty string.
func AppendUint64(dst []byte, x uint64) []byte {
	for i := beLen(x); i > 0; i-- {
		dst = append(dst, byte(x>>(uint(i-1)*8)))
	}
	return dst
}

// Uint64FromBytes is the inverse of AppendUint64. It rejects
// representations with a leading zero byte so that every integer has
// exactly one accepted form.
func Uint64FromBytes(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, ErrIntOverflow
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, ErrCanonInt
	}
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x, nil
}
