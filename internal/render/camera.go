// Package render maps the board onto a screen and draws it.
package render

import "zlife/internal/zgrid"

const (
	// DefaultCellSize is the initial pixel width of one cell.
	DefaultCellSize = 25
	// MaxCellSize bounds zooming in.
	MaxCellSize = 100
	// GridLineMinCellSize is the smallest cell size that still gets gridlines.
	GridLineMinCellSize = 8

	gridThickness      = 2
	thinGridCellSize   = (DefaultCellSize + GridLineMinCellSize) / 2
	defaultPanStepSize = 5
)

// Camera places the board on screen. OriginX/OriginY is the board pixel that
// appears at the top-left corner of the screen; it may be negative.
type Camera struct {
	CellSize int
	OriginX  int
	OriginY  int
}

// NewCamera returns a camera at the default zoom centred on a board of the
// given side length.
func NewCamera(gridSize, screenW, screenH int) Camera {
	c := Camera{CellSize: DefaultCellSize}
	c.Center(gridSize, screenW, screenH)
	return c
}

// Center moves the origin so the middle of the board is in the middle of the
// screen.
func (c *Camera) Center(gridSize, screenW, screenH int) {
	mid := gridSize * c.CellSize / 2
	c.OriginX = mid - screenW/2
	c.OriginY = mid - screenH/2
}

// Pan shifts the view by dx, dy screen pixels.
func (c *Camera) Pan(dx, dy int) {
	c.OriginX += dx
	c.OriginY += dy
}

// PanStep is the distance a held pan key moves the view per frame.
func (c *Camera) PanStep() int { return defaultPanStepSize }

// Zoom changes the cell size by delta, clamped to [1, MaxCellSize], keeping
// the board point under screen pixel (px, py) fixed.
func (c *Camera) Zoom(delta, px, py int) {
	next := c.CellSize + delta
	if next < 1 {
		next = 1
	}
	if next > MaxCellSize {
		next = MaxCellSize
	}
	if next == c.CellSize {
		return
	}
	bx := float64(px + c.OriginX)
	by := float64(py + c.OriginY)
	ratio := float64(next) / float64(c.CellSize)
	c.OriginX += int(bx*ratio - bx)
	c.OriginY += int(by*ratio - by)
	c.CellSize = next
}

// GridThickness returns the gridline width for the current zoom, or 0 when
// gridlines should not be drawn.
func (c Camera) GridThickness() int {
	switch {
	case c.CellSize < GridLineMinCellSize:
		return 0
	case c.CellSize < thinGridCellSize:
		return gridThickness / 2
	default:
		return gridThickness
	}
}

// CellAt converts a screen pixel into board coordinates.
func (c Camera) CellAt(px, py, gridSize int) (x, y int, ok bool) {
	bx, by := px+c.OriginX, py+c.OriginY
	if bx < 0 || by < 0 {
		return 0, 0, false
	}
	x, y = bx/c.CellSize, by/c.CellSize
	if x >= gridSize || y >= gridSize {
		return 0, 0, false
	}
	return x, y, true
}

// Viewport is the block of cells visible on screen. The cell (Col, Row) has
// its top-left corner at screen pixel (PixelX, PixelY).
type Viewport struct {
	Col, Row       int
	Cols, Rows     int
	PixelX, PixelY int
	CellSize       int
}

// Empty reports whether no cell is visible.
func (v Viewport) Empty() bool { return v.Cols == 0 || v.Rows == 0 }

// Viewport computes the visible block for a screen of screenW×screenH pixels.
func (c Camera) Viewport(gridSize, screenW, screenH int) Viewport {
	col, px, cols := axisSpan(c.OriginX, c.CellSize, gridSize, screenW)
	row, py, rows := axisSpan(c.OriginY, c.CellSize, gridSize, screenH)
	return Viewport{Col: col, Row: row, Cols: cols, Rows: rows, PixelX: px, PixelY: py, CellSize: c.CellSize}
}

func axisSpan(origin, cell, gridSize, screen int) (first, pixel, count int) {
	if origin <= 0 {
		pixel = -origin
	} else {
		pixel = -(origin % cell)
		first = min(origin/cell, gridSize)
	}
	if pixel >= screen {
		return first, pixel, 0
	}
	count = (screen - pixel + cell - 1) / cell
	return first, pixel, min(count, gridSize-first)
}

// ForEachVisible calls fn for every visible cell in raster order. It places
// one cursor and then walks with Right and Down steps only.
func ForEachVisible(g *zgrid.Grid, v Viewport, fn func(i, j int, alive bool)) {
	if v.Empty() {
		return
	}
	rowStart, state := g.CursorAt(v.Col, v.Row)
	for j := 0; j < v.Rows; j++ {
		c := rowStart
		for i := 0; i < v.Cols; i++ {
			fn(i, j, state&zgrid.AliveBit != 0)
			c, state = c.Right()
		}
		rowStart, state = rowStart.Down()
	}
}
