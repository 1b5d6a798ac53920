package heightfield

import (
	"image"
	"io"
	"os"

	"github.com/pkg/errors"

	// Depthmaps commonly arrive as PNG, JPEG, GIF, TIFF or BMP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load reads and decodes a depthmap image file into a normalized grid.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load depthmap")
	}
	defer f.Close()
	grid, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load depthmap %s", path)
	}
	return grid, nil
}

// Decode decodes an image stream into a normalized grid.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode depthmap")
	}
	return FromImage(img), nil
}
