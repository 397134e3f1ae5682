// Package imageio decodes source images through the virtual filesystem and
// normalizes them for pixel-level processing.
//
// Importing it registers decoders for png, jpeg, gif, webp, bmp, tiff and
// avif, so callers can stay format-agnostic.
package imageio

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/avif"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/log"
	"github.com/tinge-cli/tinge/util"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path, sniffing the format from its contents.
func Load(path string) (image.Image, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer util.Ignore(file.Close)

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	log.Debugf("decoded %s image from %s", format, path)

	return img, nil
}

// Normalize returns the image as tightly packed NRGBA with a zero origin,
// reusing the backing pixels when they already satisfy both.
func Normalize(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok &&
		nrgba.Rect.Min == (image.Point{}) &&
		nrgba.Stride == nrgba.Rect.Dx()*4 {
		return nrgba
	}

	bounds := img.Bounds()
	normalized := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(normalized, normalized.Bounds(), img, bounds.Min, draw.Src)

	return normalized
}
