//go:build !tinygo

package hal

import (
	"sync"

	"tinygo.org/x/drivers/touch"
)

// hostPressure is reported while the simulated screen is pressed.
const hostPressure = 0xFFFF

// hostTouch is a touchscreen driven by the mouse or by scripted taps.
type hostTouch struct {
	mu sync.Mutex
	p  touch.Point
}

func (t *hostTouch) ReadTouchPoint() touch.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p
}

func (t *hostTouch) press(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p = touch.Point{X: x, Y: y, Z: hostPressure}
}

func (t *hostTouch) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p = touch.Point{}
}
