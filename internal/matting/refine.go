package matting

// Erode returns a mask where a cell is content only if its entire 3x3
// neighborhood is content. Cells outside the mask count as background, so
// content touching the edge shrinks inward.
func Erode(m Mask) Mask {
	w, h := m.Width(), m.Height()
	out := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y][x] = allNeighbors(m, x, y, w, h)
		}
	}
	return out
}

// Dilate returns a mask where a cell is content if any cell in its 3x3
// neighborhood is content.
func Dilate(m Mask) Mask {
	w, h := m.Width(), m.Height()
	out := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y][x] = anyNeighbor(m, x, y, w, h)
		}
	}
	return out
}

// Open removes content regions smaller than the 3x3 structuring element
// (salt noise) by eroding and then dilating.
func Open(m Mask) Mask {
	return Dilate(Erode(m))
}

// Close fills background holes smaller than the 3x3 structuring element
// (pepper holes) by dilating and then eroding.
func Close(m Mask) Mask {
	return Erode(Dilate(m))
}

// Refine cleans a raw classifier mask: opening first to drop isolated
// specks, then closing to fill isolated holes. The result has the same shape
// as the input, and refining an already refined mask changes nothing.
func Refine(m Mask) Mask {
	return Close(Open(m))
}

func allNeighbors(m Mask, x, y, w, h int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				return false
			}
			if !m[ny][nx] {
				return false
			}
		}
	}
	return true
}

func anyNeighbor(m Mask, x, y, w, h int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if m[ny][nx] {
				return true
			}
		}
	}
	return false
}
