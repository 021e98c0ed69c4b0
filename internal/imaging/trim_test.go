package imaging

import (
	"image"
	"image/color"
	"testing"
)

// transparentWithPatch builds a fully transparent w x h grid with an opaque
// patch covering rows r0..r1 and cols c0..c1 inclusive.
func transparentWithPatch(w, h, r0, r1, c0, c1 int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			img.SetNRGBA(x, y, color.NRGBA{100, 150, 200, 255})
		}
	}
	return img
}

func TestTrimTransparent(t *testing.T) {
	img := transparentWithPatch(10, 10, 2, 5, 3, 6)

	trimmed, ok := TrimTransparent(img)
	if !ok {
		t.Fatal("TrimTransparent reported no opaque pixels")
	}

	if trimmed.Bounds().Dx() != 4 || trimmed.Bounds().Dy() != 4 {
		t.Errorf("trimmed size = %dx%d, want 4x4", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())
	}

	b := trimmed.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := trimmed.Pix[trimmed.PixOffset(x, y)+3]; a != 255 {
				t.Errorf("pixel (%d,%d): alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestTrimTransparent_PartialAlphaCounts(t *testing.T) {
	// Any alpha above zero counts as content for trimming.
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	img.SetNRGBA(4, 1, color.NRGBA{0, 0, 0, 1})

	trimmed, ok := TrimTransparent(img)
	if !ok {
		t.Fatal("TrimTransparent reported no opaque pixels")
	}
	if trimmed.Bounds().Dx() != 1 || trimmed.Bounds().Dy() != 1 {
		t.Errorf("trimmed size = %dx%d, want 1x1", trimmed.Bounds().Dx(), trimmed.Bounds().Dy())
	}
}

func TestTrimTransparent_Idempotent(t *testing.T) {
	img := transparentWithPatch(10, 10, 2, 5, 3, 6)

	once, ok := TrimTransparent(img)
	if !ok {
		t.Fatal("TrimTransparent reported no opaque pixels")
	}
	twice, ok := TrimTransparent(once)
	if !ok {
		t.Fatal("second TrimTransparent reported no opaque pixels")
	}

	if twice != once {
		t.Error("trimming an already trimmed image should return it unchanged")
	}
}

func TestTrimTransparent_FullyTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))

	trimmed, ok := TrimTransparent(img)
	if ok {
		t.Error("fully transparent image should report ok=false")
	}
	if trimmed != img {
		t.Error("fully transparent image should be returned unchanged")
	}
}

func TestTrimTransparent_NothingToTrim(t *testing.T) {
	img := transparentWithPatch(4, 4, 0, 3, 0, 3)

	trimmed, ok := TrimTransparent(img)
	if !ok {
		t.Fatal("TrimTransparent reported no opaque pixels")
	}
	if trimmed != img {
		t.Error("fully opaque image should be returned unchanged")
	}
}
