// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

// Rasterizer owns a coverage framebuffer and a LUT, and rasterizes
// triangles into the framebuffer. It is single-threaded and synchronous:
// Rasterize returns only once every pixel the input triangles touch has
// been written.
//
// A Rasterizer is not safe for concurrent calls to Rasterize; the
// framebuffer and LUT it owns are not otherwise shared across instances.
type Rasterizer struct {
	width, height int
	fb            *Framebuffer
	lut           *LUT
}

// New creates a Rasterizer for a width x height screen. The framebuffer is
// allocated zero-filled and the LUT is constructed once, here.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		fb:     newFramebuffer(width, height),
		lut:    NewLUT(),
	}
}

// Rasterize consumes a flat sequence of NDC vertices, a multiple of three
// long, and rasterizes each consecutive triple as one triangle. A trailing
// partial triangle (length not a multiple of three) is truncated, not an
// error. Triangles are processed in input order; within a triangle, tiles
// are visited row-major over its bounding box.
func (r *Rasterizer) Rasterize(vertices []Vertex) {
	n := len(vertices) - len(vertices)%3
	if n != len(vertices) {
		Logger().Warn("vertex count not a multiple of three, truncating trailing vertices",
			"total", len(vertices), "used", n)
	}

	for i := 0; i < n; i += 3 {
		r.rasterizeTriangle(vertices[i], vertices[i+1], vertices[i+2])
	}
}

// rasterizeTriangle implements the per-triangle pipeline: NDC->screen
// mapping, edge setup, tile bounding box, and the incremental tile walk
// that writes coverage into the framebuffer.
func (r *Rasterizer) rasterizeTriangle(v0, v1, v2 Vertex) {
	s0 := ndcToScreen(v0, r.width, r.height)
	s1 := ndcToScreen(v1, r.width, r.height)
	s2 := ndcToScreen(v2, r.width, r.height)

	edges, ok := triangleEdges(s0, s1, s2)
	if !ok {
		Logger().Warn("skipping degenerate triangle (coincident vertices)")
		return
	}

	bounds := triangleTileBounds(s0, s1, s2)
	if bounds.empty() {
		return
	}

	walkTiles(edges, bounds, r.lut, r.fb.writeTile)
}

// Framebuffer returns the width*height coverage bytes accumulated so far:
// 0 where not covered, 255 where covered by at least one triangle.
func (r *Rasterizer) Framebuffer() []uint8 {
	return r.fb.Pixels()
}

// Width returns the screen width this Rasterizer was constructed with.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the screen height this Rasterizer was constructed with.
func (r *Rasterizer) Height() int { return r.height }
