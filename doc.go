// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package waveshare4in2 controls the Waveshare 4.2 inch e-paper display.
//
// The panel is a 400x300 pixel black/white electrophoretic display driven
// over SPI with four auxiliary control lines (data/command, chip select,
// hardware reset, busy). It supports full, fast, partial and four-gray
// refresh modes.
//
// Frames are transferred as packed monochrome bitmaps, one bit per pixel,
// eight pixels per byte with the most significant bit being the leftmost
// pixel. The framebuf subpackage maintains such a bitmap and provides
// drawing primitives for it.
//
// Datasheet:
// https://files.waveshare.com/upload/6/6a/4.2inch-e-paper-specification.pdf
//
// Product page:
// https://www.waveshare.com/wiki/4.2inch_e-Paper_Module_Manual
package waveshare4in2
