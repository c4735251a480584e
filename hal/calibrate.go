package hal

import "tinygo.org/x/drivers/touch"

// Calibration maps raw touchscreen samples onto the screen.
//
// XMin/XMax and YMin/YMax are the raw readings at the screen edges.
type Calibration struct {
	XMin, XMax int
	YMin, YMax int
}

// DefaultCalibration matches the stock PyPortal panel.
var DefaultCalibration = Calibration{
	XMin: 5200, XMax: 59000,
	YMin: 5800, YMax: 57000,
}

// Map converts a raw sample into screen coordinates for a w x h screen.
// Z is passed through untouched. Results are clamped to the screen.
func (c Calibration) Map(p touch.Point, w, h int) touch.Point {
	return touch.Point{
		X: scaleAxis(p.X, c.XMin, c.XMax, w),
		Y: scaleAxis(p.Y, c.YMin, c.YMax, h),
		Z: p.Z,
	}
}

func scaleAxis(v, lo, hi, size int) int {
	if size <= 0 {
		return 0
	}
	if hi == lo {
		return 0
	}
	out := (v - lo) * size / (hi - lo)
	if out < 0 {
		return 0
	}
	if out >= size {
		return size - 1
	}
	return out
}

// DefaultPressureThreshold is the PyPortal panel's minimum pressure for a
// touch, on the 16-bit scale resistive.FourWire reports. The idle panel reads
// well above zero.
const DefaultPressureThreshold = 10000

// CalibratedTouch wraps a raw touch source and reports screen coordinates.
// Samples below Threshold read as the zero Point, so Z > 0 means contact.
type CalibratedTouch struct {
	Raw       Touch
	Cal       Calibration
	Width     int
	Height    int
	Threshold int
}

func (t *CalibratedTouch) ReadTouchPoint() touch.Point {
	if t.Raw == nil {
		return touch.Point{}
	}
	p := t.Raw.ReadTouchPoint()
	if p.Z <= 0 || p.Z < t.Threshold {
		return touch.Point{}
	}
	return t.Cal.Map(p, t.Width, t.Height)
}
