// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

import "math"

// edgeEpsilon bounds the minimum edge length accepted by newEdge.
// Edges shorter than this are treated as coincident vertices.
const edgeEpsilon = 1e-6

// Vertex is a triangle vertex in NDC (x, y in [-1, 1]) or, after
// ndcToScreen, in screen pixel coordinates. Z is carried through but never
// consumed — the rasterizer has no depth buffer.
type Vertex struct {
	X, Y, Z float64
}

// Edge is a half-plane (nx, ny, c) with nx*nx+ny*ny == 1. A screen point
// (x, y) lies in the half-plane iff nx*x + ny*y + c >= 0.
type Edge struct {
	NX, NY, C float64
}

// ndcToScreen maps a vertex from NDC to screen pixel coordinates:
// V' = (V + 1) * 0.5 * (W, H, 1). Y is not flipped; flipping, if wanted,
// belongs to the presentation path.
func ndcToScreen(v Vertex, width, height int) Vertex {
	return Vertex{
		X: (v.X + 1) * 0.5 * float64(width),
		Y: (v.Y + 1) * 0.5 * float64(height),
		Z: v.Z,
	}
}

// newEdge derives the half-plane for the directed edge a->b: the normal
// points to the left of the edge (CCW interior), normalized to unit length,
// with the offset normalized by the same edge length.
//
// Returns ok == false if the edge is degenerate (|a-b| < edgeEpsilon),
// which the caller must treat as "skip this triangle".
func newEdge(a, b Vertex) (edge Edge, ok bool) {
	ex := a.X - b.X
	ey := a.Y - b.Y
	length := math.Hypot(ex, ey)
	if length < edgeEpsilon {
		return Edge{}, false
	}

	nx := ey / length
	ny := -ex / length
	cRaw := a.X*b.Y - a.Y*b.X

	return Edge{NX: nx, NY: ny, C: cRaw / length}, true
}

// triangleEdges derives the three half-planes of a triangle from its
// screen-space vertices, in order V0->V1, V1->V2, V2->V0. For a
// consistently counter-clockwise-wound triangle, the intersection of all
// three half-planes is the triangle interior; a clockwise winding yields
// an empty intersection (handled naturally by the tile walker, not here).
//
// ok is false if any of the three edges is degenerate; the caller must
// skip the triangle entirely rather than render a partial result.
func triangleEdges(v0, v1, v2 Vertex) (edges [3]Edge, ok bool) {
	e0, ok0 := newEdge(v0, v1)
	e1, ok1 := newEdge(v1, v2)
	e2, ok2 := newEdge(v2, v0)
	if !ok0 || !ok1 || !ok2 {
		return edges, false
	}
	return [3]Edge{e0, e1, e2}, true
}
