package input

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionFromKeyCode(t *testing.T) {
	assert.Equal(t, DirLeft, DirectionFromKeyCode(37))
	assert.Equal(t, DirUp, DirectionFromKeyCode(38))
	assert.Equal(t, DirRight, DirectionFromKeyCode(39))
	assert.Equal(t, DirDown, DirectionFromKeyCode(40))
	for _, code := range []int{0, 13, 32, 36, 41, 65, -1} {
		assert.Equal(t, DirNone, DirectionFromKeyCode(code), "code %d", code)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "up", DirUp.String())
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "none", DirNone.String())
	assert.Equal(t, "none", Direction(99).String())
}

func TestParseArrowsAndLetters(t *testing.T) {
	in, rest := Parse([]byte("\x1b[A\x1b[Dwsx\x1b[C\x1b[B"))
	assert.Empty(t, rest)
	assert.False(t, in.Quit)
	assert.Equal(t, []int{KeyCodeUp, KeyCodeLeft, KeyCodeUp, KeyCodeDown, KeyCodeRight, KeyCodeDown}, in.Keys)
	assert.Equal(t, []Direction{DirUp, DirLeft, DirUp, DirDown, DirRight, DirDown}, in.Directions())
}

func TestParseQuit(t *testing.T) {
	for _, raw := range []string{"q", "Q", "\x03"} {
		in, _ := Parse([]byte(raw))
		assert.True(t, in.Quit, "%q", raw)
	}
}

func TestParseIgnoresUnknownSequences(t *testing.T) {
	in, rest := Parse([]byte("\x1b[Z\x1bx"))
	assert.Empty(t, rest)
	assert.Empty(t, in.Keys)
}

func TestParseModifiedAndApplicationArrows(t *testing.T) {
	in, rest := Parse([]byte("\x1b[1;5A\x1b[1;2D\x1bOB\x1bOC"))
	assert.Empty(t, rest)
	assert.Equal(t, []int{KeyCodeUp, KeyCodeLeft, KeyCodeDown, KeyCodeRight}, in.Keys)
}

func TestParseDropsWholeEscapeSequences(t *testing.T) {
	// Page Up, F5 and Alt+a must not leak letters or digits as moves.
	in, rest := Parse([]byte("\x1b[5~\x1b[15~\x1ba\x1bOP"))
	assert.Empty(t, rest)
	assert.Empty(t, in.Keys)
	assert.False(t, in.Quit)

	in, rest = Parse([]byte("\x1b\x1b[A"))
	assert.Empty(t, rest)
	assert.Equal(t, []int{KeyCodeUp}, in.Keys)
}

func TestParseKeepsIncompleteModifiedArrow(t *testing.T) {
	in, rest := Parse([]byte("w\x1b[1;5"))
	assert.Equal(t, []int{KeyCodeUp}, in.Keys)
	assert.Equal(t, []byte("\x1b[1;5"), rest)

	in, rest = Parse(append(rest, 'B'))
	assert.Empty(t, rest)
	assert.Equal(t, []int{KeyCodeDown}, in.Keys)

	_, rest = Parse([]byte("\x1bO"))
	assert.Equal(t, []byte("\x1bO"), rest)
}

func TestParseKeepsIncompleteEscape(t *testing.T) {
	in, rest := Parse([]byte("d\x1b["))
	assert.Equal(t, []int{KeyCodeRight}, in.Keys)
	assert.Equal(t, []byte("\x1b["), rest)

	in, rest = Parse(append(rest, 'A'))
	assert.Empty(t, rest)
	assert.Equal(t, []int{KeyCodeUp}, in.Keys)

	_, rest = Parse([]byte("\x1b"))
	assert.Equal(t, []byte("\x1b"), rest)
}

func TestStreamDeliversAndCloses(t *testing.T) {
	s := StartStream(strings.NewReader("\x1b[Aq"))

	var keys []int
	var quit, closed bool
	require.Eventually(t, func() bool {
		in := ReadInput(s)
		keys = append(keys, in.Keys...)
		quit = quit || in.Quit
		closed = in.Closed
		return closed
	}, time.Second, time.Millisecond)

	assert.Equal(t, []int{KeyCodeUp}, keys)
	assert.True(t, quit)

	// Reads after close stay closed and empty.
	in := ReadInput(s)
	assert.True(t, in.Closed)
	assert.Empty(t, in.Keys)
}

func TestStreamCarriesSplitSequence(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(pr)

	_, err := pw.Write([]byte("\x1b["))
	require.NoError(t, err)
	// Let the reader goroutine pick up the partial sequence.
	require.Eventually(t, func() bool {
		ReadInput(s)
		return len(s.pending) == 2
	}, time.Second, time.Millisecond)

	go pw.Write([]byte("B"))

	var keys []int
	require.Eventually(t, func() bool {
		keys = append(keys, ReadInput(s).Keys...)
		return len(keys) > 0
	}, time.Second, time.Millisecond)
	assert.Equal(t, []int{KeyCodeDown}, keys)
	pw.Close()
}
