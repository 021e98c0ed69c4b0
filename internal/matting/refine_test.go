package matting

import "testing"

// squareMask builds a w x h mask with a solid content square covering rows
// r0..r1 and cols c0..c1 inclusive.
func squareMask(w, h, r0, r1, c0, c1 int) Mask {
	m := NewMask(w, h)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			m[y][x] = true
		}
	}
	return m
}

func masksEqual(a, b Mask) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func TestOpen_RemovesIsolatedSpecks(t *testing.T) {
	m := squareMask(12, 12, 3, 8, 3, 8)
	m[1][10] = true // salt noise

	got := Open(m)

	if got[1][10] {
		t.Error("isolated speck survived opening")
	}
	want := squareMask(12, 12, 3, 8, 3, 8)
	if !masksEqual(got, want) {
		t.Error("opening did not preserve the solid square")
	}
}

func TestClose_FillsIsolatedHoles(t *testing.T) {
	m := squareMask(12, 12, 3, 8, 3, 8)
	m[5][5] = false // pepper hole

	got := Close(m)

	if !got[5][5] {
		t.Error("isolated hole survived closing")
	}
	want := squareMask(12, 12, 3, 8, 3, 8)
	if !masksEqual(got, want) {
		t.Error("closing did not preserve the solid square")
	}
}

func TestRefine_CleansNoiseAroundSquare(t *testing.T) {
	m := squareMask(12, 12, 3, 8, 3, 8)
	m[1][10] = true

	got := Refine(m)

	want := squareMask(12, 12, 3, 8, 3, 8)
	if !masksEqual(got, want) {
		t.Error("refine of square plus speck should yield the bare square")
	}
}

func TestRefine_Idempotent(t *testing.T) {
	tests := []struct {
		name  string
		build func() Mask
	}{
		{"solid square", func() Mask { return squareMask(12, 12, 3, 8, 3, 8) }},
		{"square with speck", func() Mask {
			m := squareMask(12, 12, 3, 8, 3, 8)
			m[1][10] = true
			return m
		}},
		{"square with hole and speck", func() Mask {
			m := squareMask(14, 14, 4, 9, 4, 9)
			m[6][6] = false
			m[1][12] = true
			return m
		}},
		{"empty", func() Mask { return NewMask(8, 8) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Refine(tt.build())
			twice := Refine(once)
			if !masksEqual(once, twice) {
				t.Error("refine(refine(m)) != refine(m)")
			}
		})
	}
}

func TestErode_ShrinksByOneRing(t *testing.T) {
	m := squareMask(10, 10, 2, 7, 2, 7)

	got := Erode(m)

	want := squareMask(10, 10, 3, 6, 3, 6)
	if !masksEqual(got, want) {
		t.Error("erosion should shrink the square by one cell on each side")
	}
}

func TestDilate_GrowsByOneRing(t *testing.T) {
	m := squareMask(10, 10, 3, 6, 3, 6)

	got := Dilate(m)

	want := squareMask(10, 10, 2, 7, 2, 7)
	if !masksEqual(got, want) {
		t.Error("dilation should grow the square by one cell on each side")
	}
}

func TestRefine_PreservesShape(t *testing.T) {
	// Shape identical before and after: refinement must not move content
	// that is neither salt nor pepper.
	m := squareMask(20, 20, 5, 14, 5, 14)
	got := Refine(m)
	if !masksEqual(got, m) {
		t.Error("refine modified a clean solid square")
	}
}
