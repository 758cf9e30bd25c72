// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/waveshare4in2/framebuf"
	"periph.io/x/host/v3/rpi"
)

// Opts holds the display configuration.
type Opts struct {
	Width  int
	Height int

	// BusyPollInterval is the interval at which the busy line is sampled
	// while waiting for a refresh to complete.
	BusyPollInterval time.Duration

	// RefreshTimeout bounds every busy wait. An unresponsive controller
	// surfaces as *PanelTimeout instead of blocking forever.
	RefreshTimeout time.Duration

	// SleepSettle is how long the controller is given to power down after
	// the deep sleep command. The busy line is unavailable in that mode.
	SleepSettle time.Duration
}

// EPD4in2 contains the display configuration for the Waveshare 4.2 inch
// panel.
var EPD4in2 = Opts{
	Width:            400,
	Height:           300,
	BusyPollInterval: 20 * time.Millisecond,
	RefreshTimeout:   5 * time.Second,
	SleepSettle:      2 * time.Second,
}

// Dev is a handle to the display. It owns the SPI connection and all four
// control lines for its entire lifetime.
type Dev struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn

	buffer *framebuf.Buffer

	opts *Opts
}

// New creates a handle to the display. The bus and the control lines are
// taken over exclusively; any pin type satisfying the gpio capability
// interfaces works.
func New(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	o := *opts
	if o.BusyPollInterval <= 0 {
		o.BusyPollInterval = EPD4in2.BusyPollInterval
	}
	if o.RefreshTimeout <= 0 {
		o.RefreshTimeout = EPD4in2.RefreshTimeout
	}
	if o.SleepSettle <= 0 {
		o.SleepSettle = EPD4in2.SleepSettle
	}

	d := &Dev{
		c:      c,
		dc:     dc,
		cs:     cs,
		rst:    rst,
		busy:   busy,
		buffer: framebuf.New(o.Width, o.Height),
		opts:   &o,
	}

	return d, nil
}

// NewHat creates a handle to a display connected through the default
// Waveshare HAT pin assignment on a Raspberry Pi.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return New(p, dc, cs, rst, busy, opts)
}

// Init powers the controller on, performs the hardware reset and runs the
// init sequence. After Init the controller accepts frame data.
func (d *Dev) Init() error {
	eh := errorHandler{d: *d}

	powerUp(&eh)
	if eh.err != nil {
		return eh.err
	}

	if err := d.Reset(); err != nil {
		return err
	}

	initDisplay(&eh, d.opts)

	return eh.err
}

// Reset pulses the hardware reset line. A busy wait must follow before the
// controller is addressed again; Init takes care of that.
func (d *Dev) Reset() error {
	eh := errorHandler{d: *d}

	eh.rstOut(gpio.High)
	time.Sleep(100 * time.Millisecond)
	eh.rstOut(gpio.Low)
	time.Sleep(2 * time.Millisecond)
	eh.rstOut(gpio.High)
	time.Sleep(100 * time.Millisecond)

	return eh.err
}

// Clear fills both RAM planes with white and performs a full refresh.
func (d *Dev) Clear() error {
	eh := errorHandler{d: *d}

	clear(&eh, 0xFF, d.opts)

	return eh.err
}

// Display writes the packed frame into both RAM planes and performs a full
// refresh. The frame layout is row-major, MSB first, one bit per pixel.
func (d *Dev) Display(frame []byte) error {
	if err := d.checkFrame(frame); err != nil {
		return err
	}

	eh := errorHandler{d: *d}

	writeFrame(&eh, frame)
	turnOnDisplay(&eh, updateFull)

	return eh.err
}

// DisplayFast is like Display but uses the fast refresh waveform, trading
// image quality for latency.
func (d *Dev) DisplayFast(frame []byte) error {
	if err := d.checkFrame(frame); err != nil {
		return err
	}

	eh := errorHandler{d: *d}

	writeFrame(&eh, frame)
	turnOnDisplay(&eh, updateFast)

	return eh.err
}

// Display4Gray refreshes using the four-gray waveform.
func (d *Dev) Display4Gray(frame []byte) error {
	if err := d.checkFrame(frame); err != nil {
		return err
	}

	eh := errorHandler{d: *d}

	writeFrame(&eh, frame)
	turnOnDisplay(&eh, updateFourGray)

	return eh.err
}

// DisplayPartial updates only the changed pixels. The controller requires a
// subset of the init commands restated before a partial update; the frame is
// written to the primary RAM plane only.
func (d *Dev) DisplayPartial(frame []byte) error {
	if err := d.checkFrame(frame); err != nil {
		return err
	}

	eh := errorHandler{d: *d}

	initDisplayPartial(&eh, d.opts)

	eh.sendCommand(writeRAMBW)
	eh.sendData(frame)

	turnOnDisplay(&eh, updatePartial)

	return eh.err
}

// LoadLUT programs the custom waveform table. The on-chip default is used
// otherwise; loading is only needed for non-standard refresh speed/quality
// tradeoffs. May be called any time after Init.
func (d *Dev) LoadLUT() error {
	eh := errorHandler{d: *d}

	loadLUT(&eh, lutAll)

	return eh.err
}

// Sleep puts the controller into deep sleep. The busy line is powered down
// in that mode, so completion is awaited with a fixed settle delay. A fresh
// Init is required to use the display again.
func (d *Dev) Sleep() error {
	eh := errorHandler{d: *d}

	eh.sendCommand(deepSleep)
	eh.sendByte(0x01)

	if eh.err == nil {
		time.Sleep(d.opts.SleepSettle)
	}

	return eh.err
}

// Halt clears the display.
func (d *Dev) Halt() error {
	return d.Clear()
}

// ColorModel returns a 1 bit color model.
func (d *Dev) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds returns the bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// Draw draws the given image into the internal frame and performs a full
// refresh.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	draw.Src.Draw(d.buffer, dstRect, src, srcPts)
	return d.Display(d.buffer.Bytes())
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("epd.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, d.opts.Width, d.opts.Height)
}

func (d *Dev) checkFrame(frame []byte) error {
	want := d.opts.Height * ((d.opts.Width + 7) / 8)
	if len(frame) != want {
		return fmt.Errorf("waveshare4in2: frame is %d bytes, want %d", len(frame), want)
	}
	return nil
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
