// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

import "math"

// TileSize is the side length, in pixels, of one coverage tile (G in the
// LUT parameterization). Changing it changes the LUT's binary layout.
const TileSize = 8

// tileBounds is the inclusive-exclusive range of tiles a triangle's pixel
// bounding box can touch: rows/columns [MinTY, MaxTY) x [MinTX, MaxTX).
type tileBounds struct {
	MinTX, MinTY int
	MaxTX, MaxTY int
}

// empty reports whether the range contains no tiles.
func (b tileBounds) empty() bool {
	return b.MinTX >= b.MaxTX || b.MinTY >= b.MaxTY
}

// triangleTileBounds computes the tile range covering a triangle's pixel
// bounding box, per-axis:
//
//	minP = floor(min(v0, v1, v2))
//	maxP = ceil(max(v0, v1, v2))
//	minT = minP div TileSize
//	maxT = (maxP div TileSize) + (1 if maxP mod TileSize != 0 else 0)
func triangleTileBounds(v0, v1, v2 Vertex) tileBounds {
	minX := math.Floor(min3(v0.X, v1.X, v2.X))
	maxX := math.Ceil(max3(v0.X, v1.X, v2.X))
	minY := math.Floor(min3(v0.Y, v1.Y, v2.Y))
	maxY := math.Ceil(max3(v0.Y, v1.Y, v2.Y))

	minPX, maxPX := int(minX), int(maxX)
	minPY, maxPY := int(minY), int(maxY)

	return tileBounds{
		MinTX: minPX / TileSize,
		MinTY: minPY / TileSize,
		MaxTX: tileCeilDiv(maxPX),
		MaxTY: tileCeilDiv(maxPY),
	}
}

// tileCeilDiv divides by TileSize, rounding toward positive infinity only
// when there is a nonzero remainder — matching the reference formula
// "(maxP div TileSize) + (1 if maxP mod TileSize != 0 else 0)" exactly,
// integer division and modulo both truncating toward zero.
func tileCeilDiv(maxP int) int {
	t := maxP / TileSize
	if maxP%TileSize != 0 {
		t++
	}
	return t
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
