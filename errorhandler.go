// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management. The first failure latches
// and turns all subsequent operations into no-ops.
type errorHandler struct {
	d   Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	if err := eh.d.rst.Out(l); err != nil {
		eh.err = &HardwareFault{Op: "reset line", Err: err}
	}
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	if err := eh.d.dc.Out(l); err != nil {
		eh.err = &HardwareFault{Op: "data/command line", Err: err}
	}
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	if err := eh.d.cs.Out(l); err != nil {
		eh.err = &HardwareFault{Op: "chip select line", Err: err}
	}
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	if err := eh.d.c.Tx(w, nil); err != nil {
		eh.err = &HardwareFault{Op: "bus transfer", Err: err}
	}
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.cTx([]byte{cmd})
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}

	eh.dcOut(gpio.High)
	eh.csOut(gpio.Low)
	eh.cTx(data)
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendByte(data byte) {
	eh.sendData([]byte{data})
}

// waitUntilIdle polls the busy line until it deasserts or the refresh
// timeout expires.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}

	deadline := time.Now().Add(eh.d.opts.RefreshTimeout)

	for eh.d.busy.Read() == gpio.High {
		if time.Now().After(deadline) {
			eh.err = &PanelTimeout{Timeout: eh.d.opts.RefreshTimeout}
			return
		}
		time.Sleep(eh.d.opts.BusyPollInterval)
	}
}
