// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

// Commands
const (
	panelSetting                   byte = 0x00
	powerSetting                   byte = 0x01
	powerOff                       byte = 0x02
	gateDrivingVoltageControl      byte = 0x03
	powerOn                        byte = 0x04
	sourceDrivingVoltageControl    byte = 0x04
	boosterSoftStart               byte = 0x06
	deepSleep                      byte = 0x07
	dataEntryModeSetting           byte = 0x11
	swReset                        byte = 0x12
	masterActivation               byte = 0x20
	displayUpdateControl1          byte = 0x21
	displayUpdateControl2          byte = 0x22
	writeRAMBW                     byte = 0x24
	writeRAMRed                    byte = 0x26
	writeVcomRegister              byte = 0x2C
	pllControl                     byte = 0x30
	writeLutRegister               byte = 0x32
	borderWaveformControl          byte = 0x3C
	endOption                      byte = 0x3F
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
)

// Mode bytes for the displayUpdateControl2 command. They select which RAM
// planes and LUT phases participate in the refresh triggered by
// masterActivation.
const (
	updateFull     byte = 0xF7
	updateFast     byte = 0xC7
	updatePartial  byte = 0xFF
	updateFourGray byte = 0xCF
)

// pllFrameRate is the frame rate selector sent with pllControl during
// power-on.
const pllFrameRate byte = 0x3C
