// Package imaging provides the raster transforms shared by reference image
// preparation and sprite sheet composition: exact nearest-neighbor resizes
// for pixel art, smooth resizes for sheet cells, aspect-preserving letterbox
// fits, and alpha flattening onto opaque backgrounds.
package imaging
