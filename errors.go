// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package waveshare4in2

import (
	"fmt"
	"time"
)

// HardwareFault reports a failed bus transfer or control-line operation. The
// current operation is aborted; the caller decides whether to retry the whole
// refresh cycle.
type HardwareFault struct {
	Op  string
	Err error
}

func (e *HardwareFault) Error() string {
	return fmt.Sprintf("waveshare4in2: %s: %v", e.Op, e.Err)
}

func (e *HardwareFault) Unwrap() error {
	return e.Err
}

// PanelTimeout reports a busy line that did not deassert within the
// configured refresh timeout.
type PanelTimeout struct {
	Timeout time.Duration
}

func (e *PanelTimeout) Error() string {
	return fmt.Sprintf("waveshare4in2: busy line still asserted after %s", e.Timeout)
}
