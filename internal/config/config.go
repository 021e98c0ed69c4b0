package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/logo-extract/internal/matting"
)

// Config holds the full configuration for one extraction run.
type Config struct {
	Classifier ClassifierConfig `json:"classifier"`
	Matting    MattingConfig    `json:"matting"`
	Output     OutputConfig     `json:"output"`
	Variants   []Variant        `json:"variants"`
}

// ClassifierConfig holds the foreground classification policy.
type ClassifierConfig struct {
	// Strategy is "distance" or "brightness".
	Strategy string `json:"strategy"`

	// Background is the reference background color as a hex string,
	// used by the distance strategy.
	Background string `json:"background"`

	// Threshold is the color-distance threshold (0-441) for the distance
	// strategy.
	Threshold float64 `json:"threshold"`

	// ChannelCutoff and MeanCutoff parameterize the brightness strategy.
	ChannelCutoff int     `json:"channel_cutoff"`
	MeanCutoff    float64 `json:"mean_cutoff"`
}

// MattingConfig holds mask cleanup and edge smoothing settings.
type MattingConfig struct {
	// Refine enables the 3x3 morphological open+close pass on the raw mask.
	Refine bool `json:"refine"`

	// Feather is the soft-edge falloff width in pixels; 0 selects the
	// hard-edge compositor.
	Feather float64 `json:"feather"`
}

// OutputConfig holds output placement and empty-mask behavior.
type OutputConfig struct {
	// Dir is the directory output images are written into.
	Dir string `json:"dir"`

	// FallbackFullBounds treats the whole image as content when the
	// classifier finds nothing, instead of aborting the run.
	FallbackFullBounds bool `json:"fallback_full_bounds"`
}

// Variant describes one requested output: a label for reporting, the
// fraction of the content's vertical extent to keep, and the output
// file name (extension selects the encoder).
type Variant struct {
	Label    string  `json:"label"`
	Fraction float64 `json:"fraction"`
	Output   string  `json:"output"`
}

// Default returns the stock configuration: distance classification against
// pure white at threshold 50, refinement on, a 2-pixel feather, and the two
// classic crop variants.
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Strategy:      string(matting.StrategyDistance),
			Background:    "#ffffff",
			Threshold:     50,
			ChannelCutoff: 150,
			MeanCutoff:    180,
		},
		Matting: MattingConfig{
			Refine:  true,
			Feather: 2,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Variants: []Variant{
			{Label: "Graphic only", Fraction: 0.60, Output: "logo_graphic.png"},
			{Label: "Graphic + Text", Fraction: 0.75, Output: "logo_with_text.png"},
		},
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch matting.Strategy(c.Classifier.Strategy) {
	case matting.StrategyDistance, matting.StrategyBrightness:
	default:
		return fmt.Errorf("classifier.strategy must be %q or %q",
			matting.StrategyDistance, matting.StrategyBrightness)
	}

	if _, err := colorful.Hex(c.Classifier.Background); err != nil {
		return fmt.Errorf("classifier.background %q is not a valid hex color", c.Classifier.Background)
	}

	if c.Classifier.Threshold < 0 || c.Classifier.Threshold > matting.MaxColorDistance {
		return fmt.Errorf("classifier.threshold must be between 0 and %g", matting.MaxColorDistance)
	}

	if c.Classifier.ChannelCutoff < 0 || c.Classifier.ChannelCutoff > 255 {
		return fmt.Errorf("classifier.channel_cutoff must be between 0 and 255")
	}

	if c.Classifier.MeanCutoff < 0 || c.Classifier.MeanCutoff > 255 {
		return fmt.Errorf("classifier.mean_cutoff must be between 0 and 255")
	}

	if c.Matting.Feather < 0 {
		return fmt.Errorf("matting.feather must not be negative")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir cannot be empty")
	}

	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one crop variant is required")
	}
	for i, v := range c.Variants {
		if v.Fraction <= 0 || v.Fraction > 1 {
			return fmt.Errorf("variant %d: fraction must be in (0, 1]", i)
		}
		if v.Output == "" {
			return fmt.Errorf("variant %d: output name cannot be empty", i)
		}
	}
	return nil
}

// ParseVariant parses a "label:fraction:output" triple as supplied on the
// command line, e.g. "graphic:0.6:logo_graphic.png".
func ParseVariant(s string) (Variant, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return Variant{}, fmt.Errorf("variant %q: want label:fraction:output", s)
	}

	fraction, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Variant{}, fmt.Errorf("variant %q: bad fraction: %w", s, err)
	}

	return Variant{Label: parts[0], Fraction: fraction, Output: parts[2]}, nil
}
