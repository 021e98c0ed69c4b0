package matting

import "image"

// Mask is a boolean content mask indexed as [row][col]. True marks a content
// (foreground) cell, false marks background. All rows have equal length.
type Mask [][]bool

// NewMask returns an all-background mask with the given dimensions.
func NewMask(width, height int) Mask {
	m := make(Mask, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	return m
}

// Width returns the number of columns, 0 for an empty mask.
func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Mask) Height() int {
	return len(m)
}

// Fill sets every cell to the given value.
func (m Mask) Fill(v bool) {
	for y := range m {
		for x := range m[y] {
			m[y][x] = v
		}
	}
}

// Crop returns a copy of the cells inside r, using the image convention:
// r.Min is inclusive, r.Max exclusive. The rectangle must lie within the
// mask; callers derive it from bounds computed over the same mask.
func (m Mask) Crop(r image.Rectangle) Mask {
	out := NewMask(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		copy(out[y], m[r.Min.Y+y][r.Min.X:r.Max.X])
	}
	return out
}
