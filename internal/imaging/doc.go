// Package imaging handles the pixel-grid I/O around the matting pipeline:
// loading a raster file into a normalized RGBA grid, cropping regions,
// trimming transparent borders, and persisting results.
//
// All images in and out of this package are *image.NRGBA with bounds anchored
// at the origin and 8-bit non-premultiplied channels, so alpha can be written
// directly without rescaling colors. Sources without an alpha channel load as
// fully opaque. PNG, JPEG, GIF, and WebP decode; PNG and WebP (both
// alpha-capable) encode.
//
// Coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y downward. Rectangles follow the standard image
// convention: inclusive minimum, exclusive maximum.
package imaging
