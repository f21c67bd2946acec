package loop

import "time"

// Shutdown
const (
	DefaultShutdownNotice = 10 * time.Second // How long the shutdown message stays before disconnect
)

// Inactivity
const (
	DefaultIdleWarning = 90 * time.Second
	DefaultIdleTimeout = 120 * time.Second
)

// Layout of the screen around the board, in terminal rows.
const (
	hudRows    = 1 // Title and counters above the board
	helpRows   = 1 // Controls below the board
	borderSize = 1
)
