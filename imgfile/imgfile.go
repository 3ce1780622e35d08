// Package imgfile saves rendered images, choosing the encoder from the file
// extension.
package imgfile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/salindersidhu/Buddhabrot/ppm"
)

// ErrUnknownFormat is returned for file extensions without an encoder.
var ErrUnknownFormat = errors.New("unknown image format")

type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
)

// FormatOf derives the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PPM:
		return ppm.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save writes img to path. On failure the partial file is removed; img is
// never modified, so the save can simply be retried.
func Save(path string, img image.Image) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}
