// Package matting decides which pixels of a raster image belong to content
// and which belong to the near-white background, and converts that decision
// into a per-pixel alpha channel.
//
// The package works on a boolean content mask laid out as [row][col] planes,
// the same orientation as image coordinates (row = Y, col = X). A typical
// sequence is:
//
//	mask := classifier.Mask(img)
//	mask = matting.Refine(mask)
//	bounds, err := matting.ContentBounds(mask)
//	...
//	matting.ApplyAlpha(region, regionMask, feather)
//
// # Classifier Strategies
//
// Two interchangeable strategies decide foregroundness:
//
//   - StrategyDistance: a pixel is content when its Euclidean distance from
//     the reference background color exceeds a threshold. Distances are
//     expressed on the 0-441 scale (the maximum distance between two 8-bit
//     RGB colors).
//   - StrategyBrightness: a pixel is background when all three channels
//     exceed a per-channel cutoff, or when the channel mean exceeds a mean
//     cutoff. The reference color is ignored.
//
// # Mask Refinement
//
// Refine applies a morphological opening followed by a closing, both with a
// full 3x3 structuring element. Opening removes isolated content specks,
// closing fills isolated holes inside content regions. The element shape is
// fixed so refinement is deterministic; cells outside the mask count as
// background for both operations. Refine is idempotent.
//
// # Alpha Compositing
//
// ApplyAlpha writes alpha values into an NRGBA region from its content mask.
// With a positive feather width the alpha ramps up over that many pixels from
// the content boundary, using an exact Euclidean distance transform in which
// cells outside the region also count as background. Distance is measured to
// the content/background boundary, which lies half a pixel beyond the
// outermost content cell, so at the default feather of 2 the two outermost
// content rings are partially transparent and everything deeper is fully
// opaque. A feather of 0 produces a hard edge: alpha is exactly 255 on
// content cells and 0 elsewhere.
package matting
