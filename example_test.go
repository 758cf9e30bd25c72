// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2_test

import (
	"log"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/waveshare4in2"
	"periph.io/x/devices/v3/waveshare4in2/framebuf"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := waveshare4in2.NewHat(b, &waveshare4in2.EPD4in2)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	if err := dev.Clear(); err != nil {
		log.Fatalf("failed to clear display: %v", err)
	}

	// Draw on it. Black text and shapes on a white background.
	fb := framebuf.New(400, 300)
	fb.Text("Hello from periph!", 30, 10, framebuf.Black)
	fb.Rect(30, 30, 100, 60, framebuf.Black)
	fb.Line(30, 100, 130, 160, framebuf.Black)

	if err := dev.Display(fb.Bytes()); err != nil {
		log.Fatal(err)
	}

	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}
}
