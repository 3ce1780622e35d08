package render

import (
	"image"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// Scale maps a count to the 0..255 color range relative to peak, rounding
// down. A zero peak maps everything to zero.
func Scale(v, peak uint32) uint8 {
	if peak == 0 {
		return 0
	}
	return uint8(uint64(v) * 255 / uint64(peak))
}

// Normalize rescales every cell of h in place to Scale(cell, peak).
// It must not run concurrently with Accumulate.
func Normalize(h *Heatmap, peak uint32) {
	for i, v := range h.cells {
		h.cells[i] = uint32(Scale(v, peak))
	}
}

// compose builds the image from three normalized heatmaps. Rows become
// y coordinates and columns x coordinates.
func compose(maps [3]*Heatmap) *image.RGBA {
	w, h := maps[buddha.Red].width, maps[buddha.Red].height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := range h {
		for col := range w {
			cell := row*w + col
			px := img.PixOffset(col, row)
			img.Pix[px+0] = uint8(maps[buddha.Red].cells[cell])
			img.Pix[px+1] = uint8(maps[buddha.Green].cells[cell])
			img.Pix[px+2] = uint8(maps[buddha.Blue].cells[cell])
			img.Pix[px+3] = 255
		}
	}
	return img
}
