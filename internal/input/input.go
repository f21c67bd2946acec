// Package input turns raw key presses into player directions.
package input

import (
	"bufio"
	"io"
)

// Direction is a one-cell move requested by the player.
type Direction int

const (
	DirNone Direction = iota // Unrecognised input; moves nothing
	DirLeft
	DirUp
	DirRight
	DirDown
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Key codes of the arrow keys, as reported by browsers and used across
// frontends as the common key vocabulary.
const (
	KeyCodeLeft  = 37
	KeyCodeUp    = 38
	KeyCodeRight = 39
	KeyCodeDown  = 40
)

// DirectionFromKeyCode maps an arrow key code to its direction. Every other
// code yields DirNone.
func DirectionFromKeyCode(code int) Direction {
	switch code {
	case KeyCodeLeft:
		return DirLeft
	case KeyCodeUp:
		return DirUp
	case KeyCodeRight:
		return DirRight
	case KeyCodeDown:
		return DirDown
	default:
		return DirNone
	}
}

// Input is everything pressed since the previous ReadInput call.
type Input struct {
	Keys    []int  // Arrow key codes in the order they were pressed
	Quit    bool   // q, Q or Ctrl-C
	Closed  bool   // The underlying reader is exhausted
	Pressed []byte // Raw bytes consumed this call
}

// Directions returns the directions of Keys, in order.
func (in Input) Directions() []Direction {
	dirs := make([]Direction, 0, len(in.Keys))
	for _, code := range in.Keys {
		dirs = append(dirs, DirectionFromKeyCode(code))
	}
	return dirs
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence from the previous read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	if !s.closed {
		s.pending = rest
	}
	in.Closed = s.closed
	return in
}

// Parse decodes key presses from raw terminal bytes. A trailing incomplete
// escape sequence is returned as rest so it can be completed by the next read.
//
// Arrows arrive as CSI sequences (ESC [ params final, so modified arrows such
// as ESC [ 1 ; 5 A still count) or, in application cursor mode, as SS3
// sequences (ESC O final). Other escape sequences are dropped whole.
func Parse(buf []byte) (in Input, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByte(&in, b)
			continue
		}

		end, final := escapeEnd(buf, i)
		if end < 0 {
			in.Pressed = append(in.Pressed, buf[:i]...)
			return in, append([]byte(nil), buf[i:]...)
		}
		if code, ok := arrowCodes[final]; ok {
			in.Keys = append(in.Keys, code)
		}
		i = end
	}
	in.Pressed = buf
	return in, nil
}

// escapeEnd returns the index of the last byte of the escape sequence starting
// at buf[start], and the final byte when it is a CSI or SS3 sequence. It
// returns -1 while the sequence is still incomplete.
func escapeEnd(buf []byte, start int) (end int, final byte) {
	if start+1 >= len(buf) {
		return -1, 0
	}
	switch buf[start+1] {
	case '[':
		for j := start + 2; j < len(buf); j++ {
			c := buf[j]
			switch {
			case c >= 0x40 && c <= 0x7e:
				return j, c
			case c >= 0x20 && c <= 0x3f:
				// parameter or intermediate byte
			default:
				// Malformed; drop what was read so far.
				return j - 1, 0
			}
		}
		return -1, 0
	case '\x1b':
		// Lone ESC press followed by another sequence.
		return start, 0
	case 'O':
		if start+2 >= len(buf) {
			return -1, 0
		}
		return start + 2, buf[start+2]
	default:
		// Alt chord: ESC followed by a single key.
		return start + 1, 0
	}
}

var arrowCodes = map[byte]int{
	'A': KeyCodeUp,
	'B': KeyCodeDown,
	'C': KeyCodeRight,
	'D': KeyCodeLeft,
}

// applyByte records a single-byte key press.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		in.Keys = append(in.Keys, KeyCodeLeft)
	case 'd', 'D', 'l', 'L':
		in.Keys = append(in.Keys, KeyCodeRight)
	case 'w', 'W', 'i', 'I':
		in.Keys = append(in.Keys, KeyCodeUp)
	case 's', 'S', 'k', 'K':
		in.Keys = append(in.Keys, KeyCodeDown)
	}
}
