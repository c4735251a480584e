//go:build tinygo && !pyportal

package hal

import (
	"machine"
	"net/http"
)

type stubHAL struct {
	logger *serialLogger
	led    *pinLED
}

// New returns a HAL for boards without a display, touchscreen or Wi-Fi.
// Display, Touch and Link are nil.
func New() HAL {
	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &stubHAL{
		logger: &serialLogger{},
		led:    &pinLED{pin: ledPin},
	}
}

func (h *stubHAL) Logger() Logger     { return h.logger }
func (h *stubHAL) LED() LED           { return h.led }
func (h *stubHAL) Display() Display   { return nil }
func (h *stubHAL) Touch() Touch       { return nil }
func (h *stubHAL) Link() Link         { return nil }
func (h *stubHAL) HTTP() *http.Client { return nil }
