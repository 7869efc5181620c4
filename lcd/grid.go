// Package lcd provides character displays for the menu: an in-memory grid
// and a panel that renders the grid onto a framebuffer.
package lcd

// Grid is an in-memory character display with a cursor.
type Grid struct {
	rows, cols int
	cells      []byte
	row, col   int
	version    uint64
}

// NewGrid returns a blank rows×cols grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
	g.Clear()
	return g
}

func (g *Grid) Size() (rows, cols int) { return g.rows, g.cols }

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
	g.row, g.col = 0, 0
	g.version++
}

// WriteAt writes s starting at row, col. Text past the row end is dropped.
func (g *Grid) WriteAt(row, col int, s string) {
	if row < 0 || row >= g.rows || col < 0 {
		return
	}
	base := row * g.cols
	for i := 0; i < len(s) && col+i < g.cols; i++ {
		g.cells[base+col+i] = printable(s[i])
	}
	g.version++
}

func (g *Grid) SetCursor(row, col int) {
	g.row = clamp(row, 0, g.rows-1)
	g.col = clamp(col, 0, g.cols-1)
	g.version++
}

func (g *Grid) Cursor() (row, col int) { return g.row, g.col }

// Cell returns the character at row, col.
func (g *Grid) Cell(row, col int) byte { return g.cells[row*g.cols+col] }

// Line returns row as a string of cols characters.
func (g *Grid) Line(row int) string {
	return string(g.cells[row*g.cols : (row+1)*g.cols])
}

// Version increases on every change; renderers compare it to skip redraws.
func (g *Grid) Version() uint64 { return g.version }

func printable(c byte) byte {
	if c < 0x20 || c > 0x7e {
		return '?'
	}
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
