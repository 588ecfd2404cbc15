//go:build ebiten

package render

import (
	"image/color"

	"zlife/internal/zgrid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws the visible part of a board, one image pixel per cell,
// scaled up to the camera's cell size.
type GridPainter struct {
	img  *ebiten.Image
	buf  []byte
	cols int
	rows int

	On   color.Color
	Off  color.Color
	Line color.Color
}

// NewGridPainter returns a painter drawing black cells on white.
func NewGridPainter() *GridPainter {
	return &GridPainter{On: color.Black, Off: color.White, Line: color.Black}
}

// Draw renders the cells of g visible through cam onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, g *zgrid.Grid, cam Camera) {
	bounds := dst.Bounds()
	v := cam.Viewport(g.Size(), bounds.Dx(), bounds.Dy())
	if v.Empty() {
		return
	}
	gp.ensure(v.Cols, v.Rows)
	fillViewportRGBA(gp.buf, g, v, gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.CellSize), float64(v.CellSize))
	op.GeoM.Translate(float64(v.PixelX), float64(v.PixelY))
	dst.DrawImage(gp.img, op)

	if t := cam.GridThickness(); t > 0 {
		gp.drawGridLines(dst, v, g.Size(), t, bounds.Dx(), bounds.Dy())
	}
}

// ensure reallocates the cell image when the visible block changes shape,
// which only happens on zoom, resize or when an edge scrolls into view.
func (gp *GridPainter) ensure(cols, rows int) {
	if gp.img != nil && cols == gp.cols && rows == gp.rows {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.cols, gp.rows = cols, rows
	gp.img = ebiten.NewImage(cols, rows)
	gp.buf = make([]byte, 4*cols*rows)
}

func (gp *GridPainter) drawGridLines(dst *ebiten.Image, v Viewport, gridSize, thickness, screenW, screenH int) {
	width := float32(v.Cols * v.CellSize)
	height := float32(v.Rows * v.CellSize)
	th := float32(thickness)
	for j := 0; j <= v.Rows && v.Row+j <= gridSize; j++ {
		y := v.PixelY + j*v.CellSize
		if y >= screenH {
			break
		}
		vector.DrawFilledRect(dst, float32(v.PixelX), float32(y), width, th, gp.Line, false)
	}
	for i := 0; i <= v.Cols && v.Col+i <= gridSize; i++ {
		x := v.PixelX + i*v.CellSize
		if x >= screenW {
			break
		}
		vector.DrawFilledRect(dst, float32(x), float32(v.PixelY), th, height, gp.Line, false)
	}
}
