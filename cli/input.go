package cli

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ReadInput resolves the RLP bytes a command should operate on. An
// argument is always treated as hex. With no argument the input comes
// from stdin: raw bytes when piped, hex when typed at a terminal or when
// the --hex flag is set. Input is capped at maxLen bytes.
func ReadInput(cmd *cobra.Command, args []string, maxLen int) ([]byte, error) {
	if len(args) > 0 {
		return decodeHexInput(args[0])
	}

	forceHex, _ := cmd.Flags().GetBool(FlagHex)
	data, err := io.ReadAll(io.LimitReader(os.Stdin, int64(maxLen)+1))
	if err != nil {
		return nil, errors.Wrap(err, "error reading stdin")
	}
	if len(data) > maxLen {
		return nil, errors.Errorf("input exceeds %d bytes", maxLen)
	}
	if forceHex || isatty.IsTerminal(os.Stdin.Fd()) {
		return decodeHexInput(string(data))
	}
	return data, nil
}

func decodeHexInput(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "input is not valid hex")
	}
	return b, nil
}
