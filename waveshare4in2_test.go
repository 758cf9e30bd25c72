// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name       string
		opts       Opts
		wantString string
		wantBounds image.Rectangle
	}{
		{
			name:       "empty",
			wantString: "epd.Dev{playback, (0), Width: 0, Height: 0}",
		},
		{
			name:       "EPD4in2",
			opts:       EPD4in2,
			wantBounds: image.Rect(0, 0, 400, 300),
			wantString: "epd.Dev{playback, (0), Width: 400, Height: 300}",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dev, err := New(&spitest.Playback{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &tc.opts)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			if diff := cmp.Diff(dev.String(), tc.wantString); diff != "" {
				t.Errorf("String() difference (-got +want):\n%s", diff)
			}

			if diff := cmp.Diff(dev.Bounds(), tc.wantBounds); diff != "" {
				t.Errorf("Bounds() difference (-got +want):\n%s", diff)
			}
		})
	}
}

// TestWaitUntilIdleTimeout covers the busy line never deasserting: the wait
// must end with *PanelTimeout instead of blocking forever.
func TestWaitUntilIdleTimeout(t *testing.T) {
	opts := EPD4in2
	opts.BusyPollInterval = time.Millisecond
	opts.RefreshTimeout = 5 * time.Millisecond

	dev, err := New(&spitest.Playback{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{L: gpio.High}, &opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	eh := errorHandler{d: *dev}
	eh.waitUntilIdle()

	var timeout *PanelTimeout
	if !errors.As(eh.err, &timeout) {
		t.Fatalf("waitUntilIdle() latched %v, want *PanelTimeout", eh.err)
	}
	if timeout.Timeout != opts.RefreshTimeout {
		t.Errorf("PanelTimeout.Timeout = %v, want %v", timeout.Timeout, opts.RefreshTimeout)
	}
}

// TestWaitUntilIdleReady covers the busy line already deasserted.
func TestWaitUntilIdleReady(t *testing.T) {
	dev, err := New(&spitest.Playback{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &EPD4in2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	eh := errorHandler{d: *dev}
	eh.waitUntilIdle()

	if eh.err != nil {
		t.Errorf("waitUntilIdle() latched %v, want nil", eh.err)
	}
}

func TestDisplayFrameSize(t *testing.T) {
	dev, err := New(&spitest.Playback{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &EPD4in2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := dev.Display(make([]byte, 42)); err == nil {
		t.Error("Display() accepted a frame of the wrong size")
	}
}

// TestDisplayHardwareFault covers a failing bus transfer surfacing as
// *HardwareFault.
func TestDisplayHardwareFault(t *testing.T) {
	p := &spitest.Playback{
		Playback: conntest.Playback{DontPanic: true},
	}

	dev, err := New(p, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}, &EPD4in2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	frame := make([]byte, 300*50)
	err = dev.Display(frame)

	var fault *HardwareFault
	if !errors.As(err, &fault) {
		t.Fatalf("Display() = %v, want *HardwareFault", err)
	}
	if fault.Unwrap() == nil {
		t.Error("HardwareFault does not wrap the underlying error")
	}
}
