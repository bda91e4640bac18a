/*
Package rlp implements Recursive Length Prefix, a canonical binary encoding
for nested byte-string/list structures.

Values are modeled as a two-variant tree (see Node): an opaque byte string,
or an ordered list of sub-trees. Encode maps a tree to its unique byte
sequence; Decode maps a byte sequence back to the tree, rejecting any input
that is not the canonical encoding of some tree.

Wire grammar, keyed on the first byte p of an item:

	- 0x00-0x7f: p is itself a one-byte string.
	- 0x80-0xb7: a string of p-0x80 bytes follows.
	- 0xb8-0xbf: p-0xb7 bytes of big-endian length follow, then the string.
	- 0xc0-0xf7: a list whose encoded payload is p-0xc0 bytes follows.
	- 0xf8-0xff: p-0xf7 bytes of big-endian length follow, then the payload.

Length fields are minimal-width: a length below 56 never uses the long
form, and a long-form length never has a leading zero byte. Decode fails
on any violation, so every tree has exactly one accepted encoding.

Mapping arbitrary Go types onto the tree model lives in the codec package.
*/
package rlp
