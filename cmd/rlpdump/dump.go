package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"rlpwire/rlp"

	"github.com/olekukonko/tablewriter"
)

// printTree writes an indented rendering of the node. Byte strings that
// look like text print quoted, everything else prints as hex.
func printTree(w io.Writer, n rlp.Node) {
	writeNode(w, n, "")
	fmt.Fprintln(w)
}

func writeNode(w io.Writer, n rlp.Node, indent string) {
	switch v := n.(type) {
	case rlp.Bytes:
		if isPrintable(v) {
			fmt.Fprintf(w, "%s%q", indent, string(v))
		} else {
			fmt.Fprintf(w, "%s%s", indent, hexString(v))
		}
	case rlp.List:
		if len(v) == 0 {
			fmt.Fprintf(w, "%s[]", indent)
			return
		}
		fmt.Fprintf(w, "%s[\n", indent)
		for i, item := range v {
			writeNode(w, item, indent+"  ")
			if i < len(v)-1 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s]", indent)
	}
}

// printSummary writes one table row per top-level item.
func printSummary(w io.Writer, n rlp.Node) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Encoded Bytes", "Preview"})

	items, ok := n.(rlp.List)
	if !ok {
		items = rlp.List{n}
	}
	for i, item := range items {
		table.Append([]string{
			strconv.Itoa(i),
			kindString(item),
			strconv.Itoa(rlp.EncodedLen(item)),
			preview(item),
		})
	}
	table.Render()
}

func kindString(n rlp.Node) string {
	switch n.(type) {
	case rlp.Bytes:
		return "bytes"
	case rlp.List:
		return "list"
	default:
		return "unknown"
	}
}

func preview(n rlp.Node) string {
	switch v := n.(type) {
	case rlp.Bytes:
		if isPrintable(v) {
			return strconv.Quote(string(v))
		}
		if len(v) > 16 {
			return hexString(v[:16]) + "..."
		}
		return hexString(v)
	case rlp.List:
		return fmt.Sprintf("%d items", len(v))
	}
	return ""
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func isPrintable(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
