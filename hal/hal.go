package hal

import (
	"image/color"
	"net/http"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/touch"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Display is a drawable screen.
//
// The method set matches *ili9341.Device, so the panel driver is used directly on the device.
type Display interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// Touch reports the current touch sample in screen coordinates.
// Z carries the pressure; zero means no contact.
type Touch = touch.Pointer

// Link associates with a Wi-Fi access point.
//
// netlink.Netlinker satisfies it.
type Link interface {
	NetConnect(params *netlink.ConnectParams) error
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Touch() Touch
	Link() Link
	HTTP() *http.Client
}
