package imaging

import (
	"image"
	"image/color"
	"testing"
)

func createPatternImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.NRGBA
			switch {
			case x < w/2 && y < h/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= w/2 && y < h/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < w/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	got, err := Crop(img, image.Rect(0, 0, 50, 50))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if got.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Errorf("bounds = %v, want (0,0)-(50,50)", got.Bounds())
	}
	if px := got.NRGBAAt(25, 25); px != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center pixel = %v, want red", px)
	}
}

func TestCrop_AnchorsAtOrigin(t *testing.T) {
	img := createPatternImage(100, 100)

	got, err := Crop(img, image.Rect(50, 50, 100, 100))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if got.Bounds().Min != (image.Point{}) {
		t.Errorf("cropped bounds start at %v, want origin", got.Bounds().Min)
	}
	if px := got.NRGBAAt(25, 25); px != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("center pixel = %v, want white", px)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"negative min", image.Rect(-1, 0, 50, 50)},
		{"max too large", image.Rect(0, 0, 101, 50)},
		{"fully outside", image.Rect(200, 200, 300, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(img, tt.rect); err == nil {
				t.Error("Crop should fail for out-of-bounds rectangle")
			}
		})
	}
}

func TestCrop_EmptyRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	if _, err := Crop(img, image.Rect(50, 50, 50, 60)); err == nil {
		t.Error("Crop should fail for an empty rectangle")
	}
}

func TestCrop_FullImage(t *testing.T) {
	img := createPatternImage(40, 30)

	got, err := Crop(img, image.Rect(0, 0, 40, 30))
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if got.Bounds().Dx() != 40 || got.Bounds().Dy() != 30 {
		t.Errorf("size = %dx%d, want 40x30", got.Bounds().Dx(), got.Bounds().Dy())
	}
}
