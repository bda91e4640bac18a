package rlp

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnexpectedEOF is returned when the input ends before the bytes
	// its own length fields declare.
	ErrUnexpectedEOF = errors.New("rlp: unexpected end of input")
	// ErrCanonSize is returned when a length field is not in its
	// minimal-width canonical form.
	ErrCanonSize = errors.New("rlp: non-canonical size")
	// ErrTrailingBytes is returned when input remains after the
	// top-level value has been fully decoded.
	ErrTrailingBytes = errors.New("rlp: trailing bytes after value")
	// ErrTooDeep is returned when list nesting exceeds MaxDepth.
	ErrTooDeep = errors.New("rlp: nesting exceeds depth limit")
)

// MaxDepth bounds list nesting during decoding. Without it adversarial
// input of size n can force n stack frames.
const MaxDepth = 1024

// Decode parses b as the canonical encoding of a single node. The whole
// input must be consumed: a valid value followed by trailing bytes is an
// error, as is any non-canonical length field. The returned node does not
// alias b.
func Decode(b []byte) (Node, error) {
	w := &buf{u: b}
	n, err := decodeNode(w, 0)
	if err != nil {
		return nil, err
	}
	if w.len() > 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes remain", w.len())
	}
	return n, nil
}

func decodeNode(w *buf, depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}
	prefix, err := w.readByte()
	if err != nil {
		return nil, err
	}
	switch {
	case prefix < shortBytesCode:
		return Bytes{prefix}, nil

	case prefix <= longBytesCode:
		content, err := w.next(int(prefix - shortBytesCode))
		if err != nil {
			return nil, err
		}
		if len(content) == 1 && content[0] < shortBytesCode {
			return nil, errors.Wrap(ErrCanonSize, "single byte below 0x80 must be unprefixed")
		}
		return append(Bytes{}, content...), nil

	case prefix < shortListCode:
		size, err := readSize(w, int(prefix-longBytesCode))
		if err != nil {
			return nil, err
		}
		content, err := w.next(size)
		if err != nil {
			return nil, err
		}
		return append(Bytes{}, content...), nil

	case prefix <= longListCode:
		content, err := w.next(int(prefix - shortListCode))
		if err != nil {
			return nil, err
		}
		return decodeList(content, depth)

	default:
		size, err := readSize(w, int(prefix-longListCode))
		if err != nil {
			return nil, err
		}
		content, err := w.next(size)
		if err != nil {
			return nil, err
		}
		return decodeList(content, depth)
	}
}

func decodeList(payload []byte, depth int) (Node, error) {
	items := List{}
	w := &buf{u: payload}
	for w.len() > 0 {
		item, err := decodeNode(w, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// readSize reads a sizeLen-byte big-endian length field. The grammar
// bounds sizeLen to [1, 8], so the value always fits in a uint64;
// anything the current input cannot hold is rejected before conversion
// to int.
func readSize(w *buf, sizeLen int) (int, error) {
	b, err := w.next(sizeLen)
	if err != nil {
		return 0, err
	}
	if b[0] == 0 {
		return 0, errors.Wrap(ErrCanonSize, "length has leading zero byte")
	}
	var size uint64
	for _, c := range b {
		size = size<<8 | uint64(c)
	}
	if size <= maxShortLen {
		return 0, errors.Wrap(ErrCanonSize, "length below 56 must use the short form")
	}
	if size > uint64(w.len()) {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "declared length %d exceeds %d remaining bytes", size, w.len())
	}
	return int(size), nil
}

// buf is a cursor over an immutable byte slice.
type buf struct {
	u   []byte
	off int
}

func (b *buf) len() int { return len(b.u) - b.off }

func (b *buf) readByte() (byte, error) {
	if b.off >= len(b.u) {
		return 0, ErrUnexpectedEOF
	}
	b.off++
	return b.u[b.off-1], nil
}

func (b *buf) next(n int) ([]byte, error) {
	if n > b.len() {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes, have %d", n, b.len())
	}
	data := b.u[b.off : b.off+n]
	b.off += n
	return data, nil
}
