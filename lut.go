// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

import "math"

// LUT parameters. These define the binary layout of the table; changing
// any of them is a breaking change to any serialized LUT.
const (
	// Q is the number of quantization buckets per normal-direction axis.
	Q = 64
	// K is the number of quantization buckets for the signed tile offset.
	K = 64
	// OffsetRange is the full span, in pixels, of offsets the LUT represents.
	OffsetRange = 32.0
	// DirectionSamples is the number of angles swept when building the LUT.
	// Some (sx, sy) buckets are crossed by the unit circle only over a very
	// short arc, so far more than ~2*pi*Q/2 ~= 201 samples are needed; 10000
	// reaches every bucket that a ring of 20,000,001 angles reaches.
	DirectionSamples = 10000
)

// LUT is the precomputed bitmask lookup table: for every quantized
// half-plane direction (sx, sy) and quantized offset k, it stores the 64-bit
// mask of which of the 8x8 tile's subcells satisfy the half-plane at the
// representative direction and offset.
//
// A LUT is immutable after construction and safe to share by reference
// across goroutines; nothing in this package mutates it after NewLUT
// returns.
type LUT struct {
	entries []uint64
}

// NewLUT builds the bitmask table by sweeping DirectionSamples angles
// around the unit circle and, for each reached (sx, sy) bucket, every
// offset bucket 0..K-1. Buckets never reached by the sweep are left zero;
// TestLUTDirectionCoverage checks that no bucket a unit normal can
// quantize to is among them.
//
// Construction performs D*K*TileSize*TileSize dot-product evaluations
// (~41M for the default parameters) and runs once per Rasterizer.
func NewLUT() *LUT {
	lut := &LUT{entries: make([]uint64, Q*Q*K)}

	for i := 0; i < DirectionSamples; i++ {
		angle := float64(i) * 2 * math.Pi / DirectionSamples
		nx := math.Cos(angle)
		ny := math.Sin(angle)

		sx := quantizeDirection(nx)
		sy := quantizeDirection(ny)
		prefix := sy<<12 | sx<<6

		for k := 0; k < K; k++ {
			o := (float64(k)/K - 0.5) * OffsetRange
			lut.entries[prefix|k] = tileMask(nx, ny, o)
		}
	}

	Logger().Debug("LUT constructed", "entries", len(lut.entries), "direction_samples", DirectionSamples)
	return lut
}

// Lookup returns the stored mask for a direction/offset bucket triple.
// Callers are expected to have derived sx, sy, k from quantizeDirection and
// quantizeOffset.
func (l *LUT) Lookup(sx, sy, k int) uint64 {
	return l.entries[sy<<12|sx<<6|k]
}

// lookupIndex returns the stored mask for an already-packed index, i.e.
// (sy<<12)|(sx<<6)|k computed once per edge by the tile walker and ORed
// with a fresh k per tile.
func (l *LUT) lookupIndex(idx int) uint64 {
	return l.entries[idx]
}

// Entries returns the raw backing array, e.g. for determinism comparisons
// or serialization. Callers must not mutate it.
func (l *LUT) Entries() []uint64 {
	return l.entries
}

// tileMask evaluates the half-plane (nx, ny, o) against all 64 subcell
// centers of an 8x8 tile, setting bit gy*8+gx when the subcell at
// (gx+0.5, gy+0.5) (tile-local coordinates) satisfies the half-plane.
func tileMask(nx, ny, o float64) uint64 {
	var mask uint64
	for gy := 0; gy < TileSize; gy++ {
		for gx := 0; gx < TileSize; gx++ {
			d := nx*(float64(gx)+0.5) + ny*(float64(gy)+0.5) + o
			if d >= 0 {
				mask |= 1 << uint(gy*TileSize+gx)
			}
		}
	}
	return mask
}

// quantizeDirection maps a unit-normal component n in [-1, 1] to a bucket
// index in [0, Q). n is assumed to come from a normalized (nx, ny), so the
// result is naturally in range; it is still clamped defensively.
func quantizeDirection(n float64) int {
	idx := int(math.Floor((n + 1) * 0.5 * (Q - 1)))
	return clampInt(idx, 0, Q-1)
}

// quantizeOffset maps a signed tile-origin-relative offset o (in pixels) to
// a bucket index in [0, K). It inverts NewLUT's representative offset
// (k/K - 0.5) * OffsetRange, rounding down. Clamping saturates
// conservatively: offsets well inside the half-plane clamp to the all-ones
// entry, offsets well outside clamp to the all-zeros entry.
func quantizeOffset(o float64) int {
	idx := int(math.Floor((o/OffsetRange + 0.5) * K))
	return clampInt(idx, 0, K-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
