// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

// LUT contains a waveform table that can be programmed into the controller.
type LUT []byte

// lutAll is the panel-specific waveform calibration table. It is consumed in
// five segments of 227, 1, 1, 3 and 1 bytes by loadLUT and must be
// transmitted byte-exact.
var lutAll = LUT{
	0x01, 0x0A, 0x1B, 0x0F, 0x03, 0x01, 0x01,
	0x05, 0x0A, 0x01, 0x0A, 0x01, 0x01, 0x01,
	0x05, 0x08, 0x03, 0x02, 0x04, 0x01, 0x01,
	0x01, 0x04, 0x04, 0x02, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x0A, 0x1B, 0x0F, 0x03, 0x01, 0x01,
	0x05, 0x4A, 0x01, 0x8A, 0x01, 0x01, 0x01,
	0x05, 0x48, 0x03, 0x82, 0x84, 0x01, 0x01,
	0x01, 0x84, 0x84, 0x82, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x0A, 0x1B, 0x8F, 0x03, 0x01, 0x01,
	0x05, 0x4A, 0x01, 0x8A, 0x01, 0x01, 0x01,
	0x05, 0x48, 0x83, 0x82, 0x04, 0x01, 0x01,
	0x01, 0x04, 0x04, 0x02, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x8A, 0x1B, 0x8F, 0x03, 0x01, 0x01,
	0x05, 0x4A, 0x01, 0x8A, 0x01, 0x01, 0x01,
	0x05, 0x48, 0x83, 0x02, 0x04, 0x01, 0x01,
	0x01, 0x04, 0x04, 0x02, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x8A, 0x9B, 0x8F, 0x03, 0x01, 0x01,
	0x05, 0x4A, 0x01, 0x8A, 0x01, 0x01, 0x01,
	0x05, 0x48, 0x03, 0x42, 0x04, 0x01, 0x01,
	0x01, 0x04, 0x04, 0x42, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x07, 0x17, 0x41, 0xA8,
	0x32, 0x30,
}
