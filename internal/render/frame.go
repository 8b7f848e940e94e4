package render

import "strings"

// Surface is the terminal-surface capability set the renderer draws
// against: query and resize the addressable character grid, enqueue
// cell changes, and commit them. Draw only stages changes; the caller
// decides when to Flush.
type Surface interface {
	Size() (cols, rows int)
	Resize(cols, rows int)
	SetCell(col, row int, c rune)
	Flush() error
}

// Frame is an in-memory Surface. SetCell writes into a pending buffer;
// Flush commits the pending buffer to the shown one, and String emits
// the shown buffer as one line per terminal row.
type Frame struct {
	cols, rows int
	pending    []rune
	shown      []rune
}

func NewFrame(cols, rows int) *Frame {
	f := &Frame{}
	f.Resize(cols, rows)
	return f
}

func (f *Frame) Size() (int, int) { return f.cols, f.rows }

// Resize reallocates both buffers at the new dimensions, filled with
// the empty Braille character. Previous content is discarded.
func (f *Frame) Resize(cols, rows int) {
	f.cols, f.rows = cols, rows
	f.pending = make([]rune, cols*rows)
	f.shown = make([]rune, cols*rows)
	for i := range f.pending {
		f.pending[i] = 0x2800
		f.shown[i] = 0x2800
	}
}

// SetCell stages a character at (col, row). Out-of-range coordinates
// are ignored.
func (f *Frame) SetCell(col, row int, c rune) {
	if col < 0 || row < 0 || col >= f.cols || row >= f.rows {
		return
	}
	f.pending[col+row*f.cols] = c
}

// Flush commits staged cells to the shown buffer.
func (f *Frame) Flush() error {
	copy(f.shown, f.pending)
	return nil
}

// String renders the shown buffer, rows top to bottom.
func (f *Frame) String() string {
	var b strings.Builder
	for row := 0; row < f.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(f.shown[row*f.cols : (row+1)*f.cols]))
	}
	return b.String()
}
