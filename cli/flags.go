package cli

const (
	FlagHome   = "home"
	FlagFormat = "format"
	FlagHex    = "hex"
)
