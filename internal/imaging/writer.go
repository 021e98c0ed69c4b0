package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chai2010/webp"
)

// Save persists an image under the given path, choosing the encoder from the
// file extension. ".png" and ".webp" are supported; both carry the alpha
// channel through losslessly.
func Save(img image.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		return nil
	case ".webp":
		return saveWebP(img, path)
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .webp)", filepath.Ext(path))
	}
}

func saveWebP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := webp.Encode(f, img, &webp.Options{Lossless: true}); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
