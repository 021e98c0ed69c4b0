package matting

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Strategy selects how the classifier separates content from background.
type Strategy string

const (
	// StrategyDistance marks a pixel as content when its Euclidean color
	// distance from the reference background exceeds Threshold.
	StrategyDistance Strategy = "distance"

	// StrategyBrightness marks a pixel as background when all channels
	// exceed ChannelCutoff or the channel mean exceeds MeanCutoff.
	StrategyBrightness Strategy = "brightness"
)

// MaxColorDistance is the largest possible Euclidean distance between two
// 8-bit RGB colors (black to white), used as the threshold range ceiling.
const MaxColorDistance = 441.673

// Classifier computes a boolean content mask from pixel colors. It holds no
// state; Mask is a pure function of the image and the configured policy.
type Classifier struct {
	// Strategy picks the foreground test. Default is StrategyDistance.
	Strategy Strategy

	// Background is the reference background color for StrategyDistance.
	Background colorful.Color

	// Threshold is the color distance above which a pixel counts as
	// content, on the 0-441 scale. A pixel exactly at the reference color
	// has distance 0 and is always background.
	Threshold float64

	// ChannelCutoff is the per-channel brightness above which
	// StrategyBrightness considers a channel "light" (0-255).
	ChannelCutoff uint8

	// MeanCutoff is the mean-brightness cutoff for StrategyBrightness.
	MeanCutoff float64
}

// DefaultClassifier returns the distance strategy against pure white with the
// stock threshold of 50.
func DefaultClassifier() Classifier {
	return Classifier{
		Strategy:      StrategyDistance,
		Background:    colorful.Color{R: 1, G: 1, B: 1},
		Threshold:     50,
		ChannelCutoff: 150,
		MeanCutoff:    180,
	}
}

// Validate checks that the classifier is usable.
func (c Classifier) Validate() error {
	switch c.Strategy {
	case StrategyDistance, StrategyBrightness:
	default:
		return fmt.Errorf("unknown classifier strategy %q", c.Strategy)
	}
	if c.Threshold < 0 || c.Threshold > MaxColorDistance {
		return fmt.Errorf("threshold %g outside range 0-%g", c.Threshold, MaxColorDistance)
	}
	if c.MeanCutoff < 0 || c.MeanCutoff > 255 {
		return fmt.Errorf("mean cutoff %g outside range 0-255", c.MeanCutoff)
	}
	return nil
}

// Mask classifies every pixel of img and returns the resulting content mask.
// Alpha is ignored; only the color channels participate.
func (c Classifier) Mask(img *image.NRGBA) Mask {
	b := img.Bounds()
	mask := NewMask(b.Dx(), b.Dy())

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			mask[y][x] = c.isContent(px.R, px.G, px.B)
		}
	}
	return mask
}

func (c Classifier) isContent(r, g, b uint8) bool {
	switch c.Strategy {
	case StrategyBrightness:
		if r > c.ChannelCutoff && g > c.ChannelCutoff && b > c.ChannelCutoff {
			return false
		}
		mean := (float64(r) + float64(g) + float64(b)) / 3
		return mean <= c.MeanCutoff
	default:
		px := colorful.Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		}
		return c.Background.DistanceRgb(px)*255 > c.Threshold
	}
}
