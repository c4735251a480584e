//go:build tinygo && pyportal

package hal

import (
	"image/color"
	"machine"
	"net/http"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/netlink/probe"
	"tinygo.org/x/drivers/touch/resistive"
)

type pyportalHAL struct {
	logger *serialLogger
	led    *pinLED
	disp   *ili9341.Device
	touch  *CalibratedTouch
	link   Link
}

// New returns the PyPortal HAL.
//
// Display: ILI9341 on the 8-bit parallel bus, rotated to 320x240 landscape.
// Touch: four-wire resistive panel on TOUCH_XL/XR/YD/YU.
// Wi-Fi: the ESP32 co-processor found by probe.Probe.
func New() HAL {
	logger := &serialLogger{}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	disp := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)

	backlight := machine.TFT_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	disp.Configure(ili9341.Config{})
	disp.SetRotation(ili9341.Rotation270)
	disp.FillScreen(color.RGBA{0, 0, 0, 255})
	backlight.High()

	raw := &resistive.FourWire{}
	raw.Configure(&resistive.FourWireConfig{
		YP: machine.TOUCH_YD,
		YM: machine.TOUCH_YU,
		XP: machine.TOUCH_XR,
		XM: machine.TOUCH_XL,
	})
	w, h := disp.Size()

	link, _ := probe.Probe()

	return &pyportalHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		disp:   disp,
		touch: &CalibratedTouch{
			Raw:       raw,
			Cal:       DefaultCalibration,
			Width:     int(w),
			Height:    int(h),
			Threshold: DefaultPressureThreshold,
		},
		link:   link,
	}
}

func (h *pyportalHAL) Logger() Logger     { return h.logger }
func (h *pyportalHAL) LED() LED           { return h.led }
func (h *pyportalHAL) Display() Display   { return h.disp }
func (h *pyportalHAL) Touch() Touch       { return h.touch }
func (h *pyportalHAL) Link() Link         { return h.link }
func (h *pyportalHAL) HTTP() *http.Client { return http.DefaultClient }
