// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

import "bytes"

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendByte(byte)
	waitUntilIdle()
}

// powerUp brings the controller out of the unpowered state. It must run
// before the hardware reset and the init sequence.
func powerUp(ctrl controller) {
	ctrl.sendCommand(powerSetting)

	ctrl.sendCommand(pllControl)
	ctrl.sendByte(pllFrameRate)

	ctrl.sendCommand(powerOn)
}

// initDisplay configures the controller after a hardware reset. Once it
// completes the controller accepts RAM writes.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.waitUntilIdle()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x40, 0x00})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x05)

	// X increment, Y increment.
	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendByte(0x03)

	setWindow(ctrl, 0, 0, opts.Width-1, opts.Height-1)
	setCursor(ctrl, 0, 0)

	ctrl.waitUntilIdle()
}

// initDisplayPartial restates the subset of the init sequence the controller
// requires before a partial update.
func initDisplayPartial(ctrl controller, opts *Opts) {
	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x80)

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x00, 0x00})

	// The vendor sequence sets the border waveform twice around the update
	// control write.
	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendByte(0x80)

	setWindow(ctrl, 0, 0, opts.Width-1, opts.Height-1)
	setCursor(ctrl, 0, 0)
}

// setWindow defines the addressable RAM rectangle. The X axis is addressed
// in bytes, so the low three bits of the pixel coordinates are dropped.
func setWindow(ctrl controller, xStart, yStart, xEnd, yEnd int) {
	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{byte((xStart >> 3) & 0xFF), byte((xEnd >> 3) & 0xFF)})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{
		byte(yStart & 0xFF), byte((yStart >> 8) & 0xFF),
		byte(yEnd & 0xFF), byte((yEnd >> 8) & 0xFF),
	})
}

// setCursor resets the RAM address pointers to the window origin.
func setCursor(ctrl controller, x, y int) {
	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendByte(byte((x >> 3) & 0xFF))

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{byte(y & 0xFF), byte((y >> 8) & 0xFF)})
}

// writeFrame loads the packed frame into both RAM planes. The panel is
// monochrome; the second plane historically carried the red channel and both
// receive identical data here.
func writeFrame(ctrl controller, frame []byte) {
	ctrl.sendCommand(writeRAMBW)
	ctrl.sendData(frame)

	ctrl.sendCommand(writeRAMRed)
	ctrl.sendData(frame)
}

// turnOnDisplay triggers a refresh in the given mode and blocks until the
// busy line deasserts.
func turnOnDisplay(ctrl controller, mode byte) {
	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendByte(mode)
	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

// clear loads an all-white frame into both RAM planes and performs a full
// refresh.
func clear(ctrl controller, color byte, opts *Opts) {
	frame := bytes.Repeat([]byte{color}, opts.Height*((opts.Width+7)/8))

	writeFrame(ctrl, frame)
	turnOnDisplay(ctrl, updateFull)
}

// loadLUT programs the 233 byte waveform table across its five target
// registers with the documented 227/1/1/3/1 byte split.
func loadLUT(ctrl controller, lut LUT) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut[:227])

	ctrl.sendCommand(endOption)
	ctrl.sendByte(lut[227])

	ctrl.sendCommand(gateDrivingVoltageControl)
	ctrl.sendByte(lut[228])

	ctrl.sendCommand(sourceDrivingVoltageControl)
	ctrl.sendData(lut[229:232])

	ctrl.sendCommand(writeVcomRegister)
	ctrl.sendByte(lut[232])
}
