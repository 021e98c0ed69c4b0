// Package pipeline runs the logo extraction stages end to end for one source
// image: classify, refine, bound, then crop/matte/trim/save per variant.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/logo-extract/internal/config"
	"github.com/ironsheep/logo-extract/internal/imaging"
	"github.com/ironsheep/logo-extract/internal/matting"
)

// Analysis holds the per-image artifacts shared by every crop variant: the
// refined content mask and its bounding box. Variants only read it.
type Analysis struct {
	Mask   matting.Mask
	Bounds matting.Bounds
}

// VariantResult reports one written output.
type VariantResult struct {
	Label  string
	Path   string
	Width  int
	Height int
}

// Pipeline extracts transparency-masked logo crops from a single image.
type Pipeline struct {
	cfg        *config.Config
	classifier matting.Classifier

	// OnVariant, when set, is called after each variant is written.
	OnVariant func(VariantResult)
}

// New builds a pipeline from a validated configuration.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	background, err := colorful.Hex(cfg.Classifier.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color: %w", err)
	}

	return &Pipeline{
		cfg: cfg,
		classifier: matting.Classifier{
			Strategy:      matting.Strategy(cfg.Classifier.Strategy),
			Background:    background,
			Threshold:     cfg.Classifier.Threshold,
			ChannelCutoff: uint8(cfg.Classifier.ChannelCutoff),
			MeanCutoff:    cfg.Classifier.MeanCutoff,
		},
	}, nil
}

// Analyze classifies the image and computes the mask and bounds every
// variant reuses. On an empty mask it either falls back to treating the whole
// image as content (when configured) or returns matting.ErrEmptyMask.
func (p *Pipeline) Analyze(img *image.NRGBA) (*Analysis, error) {
	mask := p.classifier.Mask(img)
	if p.cfg.Matting.Refine {
		mask = matting.Refine(mask)
	}

	bounds, err := matting.ContentBounds(mask)
	if errors.Is(err, matting.ErrEmptyMask) {
		if !p.cfg.Output.FallbackFullBounds {
			return nil, err
		}
		log.Printf("no content detected; falling back to full image bounds")
		mask.Fill(true)
		bounds = matting.FullBounds(mask)
	} else if err != nil {
		return nil, err
	}

	return &Analysis{Mask: mask, Bounds: bounds}, nil
}

// RenderVariant produces the final image for one crop variant: crop to the
// variant's vertical slice of the content bounds, composite the mask into the
// alpha channel, and trim transparent borders. The shared analysis is not
// modified.
func (p *Pipeline) RenderVariant(img *image.NRGBA, a *Analysis, v config.Variant) (*image.NRGBA, error) {
	rect := a.Bounds.Rect(a.Bounds.CutoffRow(v.Fraction))

	region, err := imaging.Crop(img, rect)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Label, err)
	}

	if err := matting.ApplyAlpha(region, a.Mask.Crop(rect), p.cfg.Matting.Feather); err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Label, err)
	}

	trimmed, ok := imaging.TrimTransparent(region)
	if !ok {
		log.Printf("variant %s: no opaque pixels to trim to; keeping untrimmed region", v.Label)
	}
	return trimmed, nil
}

// Run executes the whole pipeline for the image at inputPath and writes one
// file per configured variant into the output directory. Returns the written
// results in variant order.
func (p *Pipeline) Run(inputPath string) ([]VariantResult, error) {
	img, err := imaging.Load(inputPath)
	if err != nil {
		return nil, err
	}

	analysis, err := p.Analyze(img)
	if err != nil {
		return nil, err
	}
	b := analysis.Bounds
	fmt.Printf("Content bounds: x(%d-%d), y(%d-%d)\n", b.MinCol, b.MaxCol, b.MinRow, b.MaxRow)

	if err := os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]VariantResult, 0, len(p.cfg.Variants))
	for _, v := range p.cfg.Variants {
		final, err := p.RenderVariant(img, analysis, v)
		if err != nil {
			return nil, err
		}

		outPath := filepath.Join(p.cfg.Output.Dir, v.Output)
		if err := imaging.Save(final, outPath); err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Label, err)
		}

		result := VariantResult{
			Label:  v.Label,
			Path:   outPath,
			Width:  final.Bounds().Dx(),
			Height: final.Bounds().Dy(),
		}
		results = append(results, result)
		if p.OnVariant != nil {
			p.OnVariant(result)
		}
	}
	return results, nil
}
