// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tilecoverage implements an 8x8 tiled coverage rasterizer for 2D
// triangles given in normalized device coordinates (NDC).
//
// Unlike a per-pixel edge-function rasterizer, coverage for an entire 8x8
// tile against a single half-plane is resolved in O(1) by indexing a
// precomputed bitmask lookup table (LUT) keyed on the half-plane's quantized
// direction and signed offset to the tile origin. A triangle's tile mask is
// the bitwise AND of its three half-plane masks. This trades a 2 MiB
// read-only table for roughly 64x fewer arithmetic operations per covered
// tile compared to evaluating all 64 pixels individually.
//
// The rasterizer produces single-channel coverage only: 0 (not covered) or
// 255 (covered), with point-sample semantics at 8x8 subcell centers. It does
// not perform depth testing, attribute interpolation, anti-aliasing beyond
// point sampling, or frustum clipping other than the implicit screen-bounds
// clamp applied when pixels are written. Presentation (uploading the
// coverage buffer as a texture, blitting to colored pixels, windowing) is
// left to the caller.
package tilecoverage
