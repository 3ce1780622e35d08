// Package ppm writes images in the plain-text "P3" Portable Pixmap format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// MaxValue is the largest color component written.
const MaxValue = 255

// Encode writes img as P3: a header of "P3", the width and height and
// MaxValue on separate lines, followed by one line per image row, top row
// first, holding every pixel as "R G B ".
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", b.Dx(), b.Dy(), MaxValue); err != nil {
		return err
	}

	line := make([]byte, 0, b.Dx()*12+1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			line = strconv.AppendUint(line, uint64(c.R), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.G), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.B), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
