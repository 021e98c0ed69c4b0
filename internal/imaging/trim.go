package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// TrimTransparent crops an image to the minimal rectangle containing every
// pixel with alpha > 0, removing fully transparent border rows and columns.
// Trimming an already trimmed image is a no-op.
//
// When no pixel is opaque at all the input is returned unchanged with
// ok=false, since an empty image is not constructible; callers treat that as
// the degenerate whole-image-is-background case and report it.
func TrimTransparent(img *image.NRGBA) (trimmed *image.NRGBA, ok bool) {
	b := img.Bounds()

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] > 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX {
		return img, false
	}

	r := image.Rect(minX, minY, maxX+1, maxY+1)
	if r == b {
		return img, true
	}
	return imaging.Crop(img, r), true
}
