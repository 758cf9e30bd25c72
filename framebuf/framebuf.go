// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuf

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit is a binary pixel color.
type Bit bool

// Possible pixel values. A set bit drives the panel white, matching the
// controller's RAM plane semantics.
const (
	Black Bit = false
	White Bit = true
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "White"
	}
	return "Black"
}

// BitModel is the color model for binary pixels.
var BitModel = color.ModelFunc(convertBit)

func convertBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, bl, _ := c.RGBA()
	// Simple luminance threshold; good enough for 1 bit.
	return Bit((r+g+bl)/3 >= 0x8000)
}

// Buffer is a packed monochrome canvas with one bit per pixel, eight pixels
// per byte, the most significant bit being the leftmost pixel. Rows are laid
// out consecutively, so a byte holds bit 7-k for pixel column 8*i+k.
//
// It implements image.Image and draw.Image on top of the drawing primitives,
// so image/draw and font rasterizers can target it directly.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// New allocates a buffer of width*height/8 bytes filled with white. The
// width should be a multiple of 8 so that rows are byte aligned.
func New(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height/8),
	}
	b.Fill(White)
	return b
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(c Bit) {
	pattern := byte(0x00)
	if c == White {
		pattern = 0xFF
	}
	for i := range b.pix {
		b.pix[i] = pattern
	}
}

// SetPixel sets a single pixel. Coordinates outside the canvas are silently
// ignored.
func (b *Buffer) SetPixel(x, y int, c Bit) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	idx := (x + y*b.width) / 8
	mask := byte(0x80) >> (x % 8)
	if c == White {
		b.pix[idx] |= mask
	} else {
		b.pix[idx] &^= mask
	}
}

// BitAt returns the pixel at the given coordinates. Out of range coordinates
// read as Black.
func (b *Buffer) BitAt(x, y int) Bit {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Black
	}
	idx := (x + y*b.width) / 8
	mask := byte(0x80) >> (x % 8)
	return b.pix[idx]&mask != 0
}

// HLine draws a horizontal line of the given length starting at (x, y).
func (b *Buffer) HLine(x, y, length int, c Bit) {
	for i := 0; i < length; i++ {
		b.SetPixel(x+i, y, c)
	}
}

// VLine draws a vertical line of the given length starting at (x, y).
func (b *Buffer) VLine(x, y, length int, c Bit) {
	for i := 0; i < length; i++ {
		b.SetPixel(x, y+i, c)
	}
}

// Line draws a line between two arbitrary points using the integer Bresenham
// algorithm. Intermediate points with negative coordinates are skipped, not
// clamped.
func (b *Buffer) Line(x0, y0, x1, y1 int, c Bit) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x >= 0 && y >= 0 {
			b.SetPixel(x, y, c)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws the outline of a w by h rectangle with its top-left corner at
// (x, y).
func (b *Buffer) Rect(x, y, w, h int, c Bit) {
	b.HLine(x, y, w, c)
	b.HLine(x, y+h-1, w, c)
	b.VLine(x, y, h, c)
	b.VLine(x+w-1, y, h, c)
}

// FillRect draws a filled w by h rectangle with its top-left corner at
// (x, y).
func (b *Buffer) FillRect(x, y, w, h int, c Bit) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			b.SetPixel(x+dx, y+dy, c)
		}
	}
}

// Text draws s with the built-in 8x8 font, its top-left corner at (x, y).
// The cursor advances 8 pixels per character. Code points outside the
// printable ASCII range plot nothing but still advance the cursor.
func (b *Buffer) Text(s string, x, y int, c Bit) {
	cx := x
	for _, r := range s {
		if r >= 32 && r < 128 {
			glyph := &font8x8[r-32]
			for row, bits := range glyph {
				for col := 0; col < 8; col++ {
					if bits&(0x80>>col) != 0 {
						b.SetPixel(cx+col, y+row, c)
					}
				}
			}
		}
		cx += 8
	}
}

// Bytes returns the raw packed pixels for hand-off to the display. No copy
// is made; the slice aliases the canvas.
func (b *Buffer) Bytes() []byte {
	return b.pix
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	return b.BitAt(x, y)
}

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, convertBit(c).(Bit))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ image.Image = &Buffer{}
var _ draw.Image = &Buffer{}
