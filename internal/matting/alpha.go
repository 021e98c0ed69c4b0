package matting

import (
	"fmt"
	"image"
	"math"
)

// ApplyAlpha writes alpha values for a cropped image region from its content
// mask, leaving the color channels untouched. The mask must have the same
// dimensions as the region.
//
// With feather <= 0 the edge is hard: alpha 255 on content cells, 0 on
// background. With a positive feather the alpha of a content cell ramps with
// its distance to the content boundary: clamp((distance - 0.5) / feather)
// scaled to 0-255, where distance comes from the Euclidean distance
// transform. Content cells deeper than the feather width stay fully opaque
// and background cells stay fully transparent, so feather -> 0 reproduces the
// hard edge.
func ApplyAlpha(img *image.NRGBA, m Mask, feather float64) error {
	b := img.Bounds()
	if m.Width() != b.Dx() || m.Height() != b.Dy() {
		return fmt.Errorf("mask size %dx%d does not match region %dx%d",
			m.Width(), m.Height(), b.Dx(), b.Dy())
	}

	var dist [][]float64
	if feather > 0 {
		dist = DistanceTransform(m)
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			if !m[y][x] {
				img.Pix[i+3] = 0
				continue
			}
			if feather <= 0 {
				img.Pix[i+3] = 255
				continue
			}
			factor := (dist[y][x] - 0.5) / feather
			if factor > 1 {
				factor = 1
			}
			if factor < 0 {
				factor = 0
			}
			img.Pix[i+3] = uint8(math.Round(255 * factor))
		}
	}
	return nil
}
