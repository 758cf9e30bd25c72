// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to preview e-paper frames on the development host without panel
// hardware attached.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// X and Y are the emulated panel dimensions in pixels. Terminal cells
	// are wide, so every pixel is rendered as one colored block.
	X int
	Y int

	// Palette translates pixel colors to ANSI escape codes. Defaults to
	// ansi256.Default.
	Palette *ansi256.Palette

	// W receives the rendered frames. Defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a 2D monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	palette ansi256.Palette

	pixels []color.NRGBA
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits local testing of frame rendering.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		bounds:  image.Rect(0, 0, opts.X, opts.Y),
		palette: *p,
		pixels:  make([]color.NRGBA, opts.X*opts.Y),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.bounds.Dx(), d.bounds.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the output is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer. The whole frame is re-rendered on every
// call, one terminal line per pixel row.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.bounds)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			r16, g16, b16, _ := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y).RGBA()
			d.pixels[y*d.bounds.Dx()+x] = color.NRGBA{byte(r16 >> 8), byte(g16 >> 8), byte(b16 >> 8), 255}
		}
	}

	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[0m")
	for y := 0; y < d.bounds.Dy(); y++ {
		for x := 0; x < d.bounds.Dx(); x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.pixels[y*d.bounds.Dx()+x]))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
