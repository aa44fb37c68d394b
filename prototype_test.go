// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

// referenceRasterize is a naive per-pixel rasterizer: it evaluates the same
// three normalized half-planes as the production LUT path, but directly at
// each pixel center in floating point, with no quantization at all. It
// exists purely as a test oracle for the LUT path's point-sample
// correctness and winding behavior; it is never used outside _test.go
// files.
func referenceRasterize(vertices []Vertex, width, height int) []uint8 {
	out := make([]uint8, width*height)

	n := len(vertices) - len(vertices)%3
	for i := 0; i < n; i += 3 {
		v0 := ndcToScreen(vertices[i], width, height)
		v1 := ndcToScreen(vertices[i+1], width, height)
		v2 := ndcToScreen(vertices[i+2], width, height)

		edges, ok := triangleEdges(v0, v1, v2)
		if !ok {
			continue
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				px, py := float64(x)+0.5, float64(y)+0.5
				inside := true
				for _, e := range edges {
					if e.NX*px+e.NY*py+e.C < 0 {
						inside = false
						break
					}
				}
				if inside {
					out[y*width+x] = 255
				}
			}
		}
	}

	return out
}

// minEdgeDistance returns the smallest absolute distance from pixel center
// (x+0.5, y+0.5) to any of the triangle's three half-planes, used to
// exclude near-edge pixels from the LUT/reference agreement check (LUT
// quantization only promises agreement away from edge boundaries).
func minEdgeDistance(edges [3]Edge, x, y int) float64 {
	px, py := float64(x)+0.5, float64(y)+0.5
	min := -1.0
	for _, e := range edges {
		d := e.NX*px + e.NY*py + e.C
		if d < 0 {
			d = -d
		}
		if min < 0 || d < min {
			min = d
		}
	}
	return min
}
