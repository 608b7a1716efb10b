package server

import (
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

func clearScreen() string      { return csi + "2J" }
func hideCursor() string       { return csi + "?25l" }
func showCursor() string       { return csi + "?25h" }
func enableAltScreen() string  { return csi + "?1049h" }
func disableAltScreen() string { return csi + "?1049l" }

type ansiCell struct {
	r  rune
	fg tcell.Color
}

// ANSICanvas buffers a frame of cells and writes it as 24-bit colour escape
// sequences on Show.
type ANSICanvas struct {
	w             io.Writer
	width, height int
	cells         []ansiCell
	err           error
}

// NewANSICanvas creates a canvas of the given size writing to w.
func NewANSICanvas(w io.Writer, width, height int) *ANSICanvas {
	c := &ANSICanvas{
		w:      w,
		width:  width,
		height: height,
		cells:  make([]ansiCell, width*height),
	}
	c.Clear()
	return c
}

// Clear resets every cell to a blank.
func (c *ANSICanvas) Clear() {
	for i := range c.cells {
		c.cells[i] = ansiCell{r: ' ', fg: tcell.ColorWhite}
	}
}

// SetCell sets one cell. Cells outside the canvas are dropped.
func (c *ANSICanvas) SetCell(x, y int, r rune, fg tcell.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = ansiCell{r: r, fg: fg}
}

// Show writes the whole frame from the top-left corner.
// A write failure is kept and reported by Err.
func (c *ANSICanvas) Show() {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.w, c.Frame())
}

// Err returns the first write error, if any.
func (c *ANSICanvas) Err() error {
	return c.err
}

// Frame renders the buffered cells. Colour escapes are only emitted when the
// foreground changes.
func (c *ANSICanvas) Frame() string {
	var sb strings.Builder
	sb.Grow(len(c.cells) * 4)
	sb.WriteString(csi + "H")

	for y := 0; y < c.height; y++ {
		last := tcell.ColorDefault
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.fg != last {
				writeFG(&sb, cell.fg)
				last = cell.fg
			}
			sb.WriteRune(cell.r)
		}
		sb.WriteString(reset)
		if y < c.height-1 {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}

func writeFG(sb *strings.Builder, fg tcell.Color) {
	r, g, b := fg.RGB()
	sb.WriteString(csi + "38;2;")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte('m')
}

var _ ui.Canvas = (*ANSICanvas)(nil)
