package draw

// ANSI SGR sequences used by the sprites.
const (
	Reset = "\033[0m"

	FgBlack        = "\033[30m"
	FgBrightBlack  = "\033[90m"
	FgBrightRed    = "\033[91m"
	FgBrightGreen  = "\033[92m"
	FgBrightYellow = "\033[93m"
	FgBrightCyan   = "\033[96m"

	BgBlue        = "\033[44m"
	BgGreen       = "\033[42m"
	BgBrightBlack = "\033[100m"
)
