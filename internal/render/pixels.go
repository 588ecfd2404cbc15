package render

import (
	"image/color"

	"zlife/internal/zgrid"
)

// fillViewportRGBA rasterises the visible cells into buf at one pixel per
// cell, row by row. buf must hold 4*v.Cols*v.Rows bytes.
func fillViewportRGBA(buf []byte, g *zgrid.Grid, v Viewport, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	ForEachVisible(g, v, func(i, j int, alive bool) {
		base := (j*v.Cols + i) * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}
