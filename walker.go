// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

// edgeWalk holds the per-triangle, per-edge state the tile walker steps
// incrementally: a constant per-tile increment in each axis, the packed
// direction prefix into the LUT, and the running signed offset of the
// current tile's origin to the edge.
type edgeWalk struct {
	dx, dy float64 // per-tile increments: nx*G, ny*G
	prefix int     // (sy << 12) | (sx << 6)
	rowOff float64 // offset of the current row at tile column 0
}

// newEdgeWalk derives the incremental walk state for one edge, with the
// running offset initialized to the first row of the tile bounding box.
func newEdgeWalk(e Edge, minTY int) edgeWalk {
	dx := e.NX * TileSize
	dy := e.NY * TileSize
	sx := quantizeDirection(e.NX)
	sy := quantizeDirection(e.NY)

	return edgeWalk{
		dx:     dx,
		dy:     dy,
		prefix: sy<<12 | sx<<6,
		rowOff: e.C + dy*float64(minTY),
	}
}

// walkTiles visits every tile in bounds in row-major order, indexing the
// LUT three times per tile (once per edge) and ANDing the three masks.
// emit is called once per tile whose combined mask is nonzero; tiles with
// an all-zero mask are skipped without a framebuffer write.
func walkTiles(edges [3]Edge, bounds tileBounds, lut *LUT, emit func(tx, ty int, mask uint64)) {
	walks := [3]edgeWalk{
		newEdgeWalk(edges[0], bounds.MinTY),
		newEdgeWalk(edges[1], bounds.MinTY),
		newEdgeWalk(edges[2], bounds.MinTY),
	}

	for ty := bounds.MinTY; ty < bounds.MaxTY; ty++ {
		var cur [3]float64
		for i := range walks {
			cur[i] = walks[i].rowOff + walks[i].dx*float64(bounds.MinTX)
		}

		for tx := bounds.MinTX; tx < bounds.MaxTX; tx++ {
			mask := ^uint64(0)
			for i := range walks {
				k := quantizeOffset(cur[i])
				mask &= lut.lookupIndex(walks[i].prefix | k)
			}
			if mask != 0 {
				emit(tx, ty, mask)
			}
			for i := range walks {
				cur[i] += walks[i].dx
			}
		}

		for i := range walks {
			walks[i].rowOff += walks[i].dy
		}
	}
}
