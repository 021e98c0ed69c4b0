package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads a raster image file and returns it as a normalized pixel grid:
// an *image.NRGBA with bounds anchored at (0,0) and 8-bit channels. Sources
// without an alpha channel come back fully opaque; 16-bit sources are scaled
// down to 8 bits.
//
// Supported formats are PNG, JPEG, GIF, and WebP. Any failure to open or
// decode the file is fatal for the run; the error wraps the underlying cause.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return imaging.Clone(img), nil
}
