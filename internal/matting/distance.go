package matting

import "math"

const dtInf = 1e20

// DistanceTransform computes, for every content cell, the exact Euclidean
// distance to the nearest background cell, measured between cell centers.
// Background cells map to 0. Cells outside the mask bounds count as
// background, so content touching the mask edge still ramps: a border content
// cell is at distance 1 even when the mask interior holds no background at
// all (the usual case for a region cropped tightly to the content bounds).
//
// Uses the Felzenszwalb-Huttenlocher lower-envelope algorithm: a 1-D squared
// distance transform down each column, then another along each row, in
// O(width*height) total. The virtual background outside the bounds enters as
// zero-valued samples padded onto both ends of every column and row.
func DistanceTransform(m Mask) [][]float64 {
	w, h := m.Width(), m.Height()
	d := make([][]float64, h)
	for y := 0; y < h; y++ {
		d[y] = make([]float64, w)
	}
	if w == 0 || h == 0 {
		return d
	}

	// Columns: squared vertical distance to the nearest background cell,
	// including the virtual background above and below the mask.
	col := make([]float64, h+2)
	for x := 0; x < w; x++ {
		col[0], col[h+1] = 0, 0
		for y := 0; y < h; y++ {
			if m[y][x] {
				col[y+1] = dtInf
			} else {
				col[y+1] = 0
			}
		}
		dt := squaredDT(col)
		for y := 0; y < h; y++ {
			d[y][x] = dt[y+1]
		}
	}

	// Rows: combine with squared horizontal distances, including the
	// virtual background left and right of the mask.
	row := make([]float64, w+2)
	for y := 0; y < h; y++ {
		row[0], row[w+1] = 0, 0
		copy(row[1:w+1], d[y])
		dt := squaredDT(row)
		for x := 0; x < w; x++ {
			d[y][x] = math.Sqrt(dt[x+1])
		}
	}
	return d
}

// squaredDT computes the 1-D squared distance transform of f, where f holds
// squared distances so far (0 at background samples, dtInf where no vertical
// background exists).
func squaredDT(f []float64) []float64 {
	n := len(f)
	d := make([]float64, n)
	v := make([]int, n)       // locations of parabolas in the lower envelope
	z := make([]float64, n+1) // boundaries between parabolas

	k := 0
	v[0] = 0
	z[0] = -dtInf
	z[1] = dtInf

	for q := 1; q < n; q++ {
		s := envelopeCrossing(f, q, v[k])
		for s <= z[k] {
			k--
			s = envelopeCrossing(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = dtInf
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dx := float64(q - v[k])
		d[q] = dx*dx + f[v[k]]
	}
	return d
}

// envelopeCrossing returns the horizontal position where the parabolas rooted
// at q and p intersect.
func envelopeCrossing(f []float64, q, p int) float64 {
	fq := float64(q)
	fp := float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}
