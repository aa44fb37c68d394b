// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tilecoverage

// Framebuffer is a dense, single-channel coverage buffer: width*height
// bytes, each either 0 (not covered) or 255 (covered). It is created
// zero-filled and mutated only by writeTile.
type Framebuffer struct {
	width, height int
	data          []uint8
}

// newFramebuffer allocates a zero-filled coverage buffer.
func newFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Pixels returns the raw width*height coverage bytes in row-major order.
// Callers must treat this as read-only; it is the same backing array the
// rasterizer writes into.
func (f *Framebuffer) Pixels() []uint8 { return f.data }

// At returns the coverage value at (x, y), or 0 if out of bounds.
func (f *Framebuffer) At(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[y*f.width+x]
}

// writeTile scatters the 64-bit coverage mask of tile (tx, ty) into the
// framebuffer, clipping to screen bounds. Bit gy*8+gx of mask corresponds
// to pixel (tx*TileSize+gx, ty*TileSize+gy). Writes are idempotent: every
// set bit writes 255, nothing else is touched.
func (f *Framebuffer) writeTile(tx, ty int, mask uint64) {
	baseX := tx * TileSize
	baseY := ty * TileSize

	for gy := 0; gy < TileSize; gy++ {
		py := baseY + gy
		if py < 0 || py >= f.height {
			continue
		}
		rowStart := py * f.width

		rowBits := (mask >> uint(gy*TileSize)) & 0xFF
		if rowBits == 0 {
			continue
		}
		for gx := 0; gx < TileSize; gx++ {
			if rowBits&(1<<uint(gx)) == 0 {
				continue
			}
			px := baseX + gx
			if px < 0 || px >= f.width {
				continue
			}
			f.data[rowStart+px] = 255
		}
	}
}
