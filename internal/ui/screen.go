// Package ui renders generated levels to the terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen for the explorer. The terminal is split into
// a map viewport and one reserved status row at the bottom.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes a line of text starting at the position.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		s.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Viewport returns the map drawing area: the terminal size minus the
// status row.
func (s *Screen) Viewport() (width, height int) {
	w, h := s.screen.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// StatusRow returns the row index reserved for status text.
func (s *Screen) StatusRow() int {
	_, h := s.screen.Size()
	return h - 1
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
