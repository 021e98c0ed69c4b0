package matting

import (
	"errors"
	"image"
	"math"
)

// ErrEmptyMask reports that a mask contains no content cells, so no bounding
// box exists. Callers either fall back to the full image bounds or abort with
// a diagnostic; producing a zero-size output is never valid.
var ErrEmptyMask = errors.New("mask contains no content pixels")

// Bounds is the smallest axis-aligned rectangle containing all content cells
// of a mask. All four edges are inclusive.
type Bounds struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// ContentBounds scans the mask and returns the tight bounding box of its
// content cells. Returns ErrEmptyMask when no cell is content.
func ContentBounds(m Mask) (Bounds, error) {
	b := Bounds{
		MinRow: m.Height(),
		MinCol: m.Width(),
		MaxRow: -1,
		MaxCol: -1,
	}
	for y := range m {
		for x, v := range m[y] {
			if !v {
				continue
			}
			if y < b.MinRow {
				b.MinRow = y
			}
			if y > b.MaxRow {
				b.MaxRow = y
			}
			if x < b.MinCol {
				b.MinCol = x
			}
			if x > b.MaxCol {
				b.MaxCol = x
			}
		}
	}
	if b.MaxRow < 0 {
		return Bounds{}, ErrEmptyMask
	}
	return b, nil
}

// FullBounds returns the whole mask as a bounding box, the fallback used when
// a run is configured to treat an empty mask as all content. The mask must
// not be zero-sized.
func FullBounds(m Mask) Bounds {
	return Bounds{MinRow: 0, MaxRow: m.Height() - 1, MinCol: 0, MaxCol: m.Width() - 1}
}

// CutoffRow computes the bottom row (inclusive) of a vertical crop covering
// the given fraction of the content's vertical extent. Fractions are in
// (0, 1]: 1 keeps everything down to MaxRow, values near 0 converge on
// MinRow. The result is rounded to the nearest row and clamped to MaxRow.
func (b Bounds) CutoffRow(fraction float64) int {
	row := b.MinRow + int(math.Round(fraction*float64(b.MaxRow-b.MinRow)))
	if row > b.MaxRow {
		row = b.MaxRow
	}
	if row < b.MinRow {
		row = b.MinRow
	}
	return row
}

// Rect converts the inclusive bounds to a standard image rectangle with an
// exclusive maximum, optionally stopping at cutoffRow instead of MaxRow.
func (b Bounds) Rect(cutoffRow int) image.Rectangle {
	return image.Rect(b.MinCol, b.MinRow, b.MaxCol+1, cutoffRow+1)
}

// Width returns the number of columns covered, inclusive of both edges.
func (b Bounds) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the number of rows covered, inclusive of both edges.
func (b Bounds) Height() int { return b.MaxRow - b.MinRow + 1 }
