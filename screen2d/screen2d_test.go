// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"periph.io/x/devices/v3/waveshare4in2/framebuf"
)

func TestDraw(t *testing.T) {
	var out bytes.Buffer

	d := New(&Opts{X: 8, Y: 2, W: &out})

	fb := framebuf.New(8, 2)
	fb.SetPixel(0, 0, framebuf.Black)

	if err := d.Draw(d.Bounds(), fb, image.Point{}); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	got := out.String()
	if got == "" {
		t.Fatal("Draw() produced no output")
	}
	// One terminal line per pixel row.
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("Draw() produced %d lines, want 2", n)
	}
	if !strings.Contains(got, "\033[0m") {
		t.Error("Draw() output misses the color reset sequence")
	}
}

func TestBounds(t *testing.T) {
	d := New(&Opts{X: 16, Y: 4})

	if got := d.Bounds(); got != image.Rect(0, 0, 16, 4) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestHalt(t *testing.T) {
	var out bytes.Buffer

	d := New(&Opts{X: 1, Y: 1, W: &out})

	if err := d.Halt(); err != nil {
		t.Fatalf("Halt() failed: %v", err)
	}
	if !strings.Contains(out.String(), "\033[0m") {
		t.Error("Halt() did not reset the terminal colors")
	}
}
