package tui

import (
	"errors"
	"fmt"
)

// Windowed canvas size in cells.
const (
	windowCols = 80
	windowRows = 24
)

// termFullscreen switches the canvas between a framed window of fixed size
// and the whole terminal.
type termFullscreen struct {
	active bool
	width  int // Terminal size, 0 until the first resize
	height int
}

// Active reports whether the canvas fills the terminal.
func (f *termFullscreen) Active() bool {
	return f.active
}

// Enter switches to fullscreen. It fails when the terminal size is unknown
// or the terminal is no larger than the framed window.
func (f *termFullscreen) Enter() error {
	if f.width == 0 || f.height == 0 {
		return errors.New("terminal size is unknown")
	}
	if f.width <= windowCols+2 && f.height <= windowRows+3 {
		return fmt.Errorf("terminal is %dx%d, no larger than the %dx%d window", f.width, f.height, windowCols, windowRows)
	}
	f.active = true
	return nil
}

// Exit returns to the framed window.
func (f *termFullscreen) Exit() {
	f.active = false
}

// Resize records the terminal size.
func (f *termFullscreen) Resize(width, height int) {
	f.width = width
	f.height = height
}

// canvasSize returns the canvas size in cells for the current mode.
// The framed window shrinks to fit small terminals, leaving room for the
// border and the help line.
func (f *termFullscreen) canvasSize() (int, int) {
	if f.active {
		return f.width, f.height
	}
	w, h := windowCols, windowRows
	if f.width > 0 {
		w = min(w, f.width-2)
	}
	if f.height > 0 {
		h = min(h, f.height-3)
	}
	return max(w, 1), max(h, 1)
}
