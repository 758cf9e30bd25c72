// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package framebuf implements a packed 1 bit per pixel canvas in the byte
// layout expected by the waveshare4in2 controller, along with geometric and
// text drawing primitives.
//
// The canvas also implements image.Image and draw.Image so it can be used as
// the destination of image/draw operations and font rasterizers.
package framebuf
