// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

import "testing"

func TestTriangleTileBounds(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 Vertex
		want       tileBounds
	}{
		{
			name: "single tile, aligned",
			v0:   Vertex{1, 1, 0}, v1: Vertex{6, 1, 0}, v2: Vertex{1, 6, 0},
			want: tileBounds{MinTX: 0, MinTY: 0, MaxTX: 1, MaxTY: 1},
		},
		{
			name: "max on a multiple of 8 stays in one tile",
			v0:   Vertex{0, 0, 0}, v1: Vertex{8, 0, 0}, v2: Vertex{0, 8, 0},
			want: tileBounds{MinTX: 0, MinTY: 0, MaxTX: 1, MaxTY: 1},
		},
		{
			name: "touches a tile boundary past a multiple of 8",
			v0:   Vertex{0, 0, 0}, v1: Vertex{9, 0, 0}, v2: Vertex{0, 9, 0},
			want: tileBounds{MinTX: 0, MinTY: 0, MaxTX: 2, MaxTY: 2},
		},
		{
			// Go's integer division and modulo both truncate toward zero
			// (matching the reference implementation's C++ semantics), so
			// -20/8 = -2, not floor(-20/8) = -3.
			name: "negative coordinates (off-screen)",
			v0:   Vertex{-20, -20, 0}, v1: Vertex{-12, -20, 0}, v2: Vertex{-20, -12, 0},
			want: tileBounds{MinTX: -2, MinTY: -2, MaxTX: 0, MaxTY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangleTileBounds(tt.v0, tt.v1, tt.v2)
			if got != tt.want {
				t.Errorf("triangleTileBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTileBoundsEmpty(t *testing.T) {
	if !(tileBounds{MinTX: 2, MinTY: 0, MaxTX: 2, MaxTY: 5}).empty() {
		t.Error("equal min/max X should report empty")
	}
	if (tileBounds{MinTX: 0, MinTY: 0, MaxTX: 1, MaxTY: 1}).empty() {
		t.Error("nonempty bounds reported empty")
	}
}
