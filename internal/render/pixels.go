package render

import (
	"image"
	"image/color"

	"mad-life/pkg/sims/life"
)

// fillBinaryRGBA converts intensity cell data (0 = dead) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// RGBA rasterizes g with each cell drawn as a scale×scale block.
func RGBA(g *life.Grid, scale int, on, off color.Color) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	n := g.Size()
	cells := image.NewRGBA(image.Rect(0, 0, n, n))
	fillBinaryRGBA(cells.Pix, g.Intensities(), on, off)
	if scale == 1 {
		return cells
	}
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))
	for y := 0; y < n*scale; y++ {
		src := cells.Pix[(y/scale)*cells.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < n*scale; x++ {
			copy(dst[x*4:x*4+4], src[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return img
}

// Palette is the two-color palette used for recordings: index 0 is dead.
var Palette = color.Palette{color.Black, color.White}

// Paletted rasterizes g into a two-color image with each cell drawn as a
// scale×scale block.
func Paletted(g *life.Grid, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	n := g.Size()
	img := image.NewPaletted(image.Rect(0, 0, n*scale, n*scale), Palette)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.At(row, col) != life.Alive {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				line := img.Pix[(row*scale+dy)*img.Stride:]
				for dx := 0; dx < scale; dx++ {
					line[col*scale+dx] = 1
				}
			}
		}
	}
	return img
}
