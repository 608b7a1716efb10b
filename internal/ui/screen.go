// Package ui provides terminal rendering and key decoding using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Canvas is a character-cell surface the renderer draws onto.
type Canvas interface {
	Clear()
	SetCell(x, y int, r rune, fg tcell.Color)
	Show()
}

// Screen wraps tcell.Screen with a simplified interface.
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

// SetCell sets a single cell's content at the given position on a black background.
func (s *Screen) SetCell(x, y int, r rune, fg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
	s.screen.SetContent(x, y, r, nil, style)
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

var _ Canvas = (*Screen)(nil)
