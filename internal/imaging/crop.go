package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts a rectangular region from an image as a new NRGBA grid with
// bounds anchored at the origin. The rectangle must be non-empty and lie
// inside the image.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	if r.Dx() < 1 || r.Dy() < 1 {
		return nil, fmt.Errorf("invalid crop region: %dx%d", r.Dx(), r.Dy())
	}

	bounds := img.Bounds()
	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, r), nil
}
