package hal

import (
	"context"
	"testing"

	"portal/portal/touchpoll"

	"tinygo.org/x/drivers/touch"
)

func TestCalibrationMapEdges(t *testing.T) {
	cal := DefaultCalibration
	tests := []struct {
		name  string
		in    touch.Point
		wantX int
		wantY int
	}{
		{"min", touch.Point{X: 5200, Y: 5800, Z: 1}, 0, 0},
		{"below min", touch.Point{X: 100, Y: 100, Z: 1}, 0, 0},
		{"max", touch.Point{X: 59000, Y: 57000, Z: 1}, 319, 239},
		{"mid", touch.Point{X: 32100, Y: 31400, Z: 1}, 160, 120},
	}
	for _, tt := range tests {
		got := cal.Map(tt.in, 320, 240)
		if got.X != tt.wantX || got.Y != tt.wantY {
			t.Fatalf("%s: Map() = (%d, %d), want (%d, %d)", tt.name, got.X, got.Y, tt.wantX, tt.wantY)
		}
		if got.Z != tt.in.Z {
			t.Fatalf("%s: Map() Z = %d, want %d", tt.name, got.Z, tt.in.Z)
		}
	}
}

type rawTouch struct{ p touch.Point }

func (r *rawTouch) ReadTouchPoint() touch.Point { return r.p }

func TestCalibratedTouchNoContact(t *testing.T) {
	raw := &rawTouch{p: touch.Point{X: 40000, Y: 40000, Z: 0}}
	ct := &CalibratedTouch{Raw: raw, Cal: DefaultCalibration, Width: 320, Height: 240}
	if got := ct.ReadTouchPoint(); got != (touch.Point{}) {
		t.Fatalf("ReadTouchPoint() = %+v, want zero point", got)
	}
}

func TestCalibratedTouchThreshold(t *testing.T) {
	raw := &rawTouch{}
	ct := &CalibratedTouch{Raw: raw, Cal: DefaultCalibration, Width: 320, Height: 240, Threshold: DefaultPressureThreshold}

	raw.p = touch.Point{X: 32100, Y: 31400, Z: DefaultPressureThreshold - 1}
	if got := ct.ReadTouchPoint(); got != (touch.Point{}) {
		t.Fatalf("light press ReadTouchPoint() = %+v, want zero point", got)
	}
	raw.p.Z = DefaultPressureThreshold
	if got := ct.ReadTouchPoint(); got.X != 160 || got.Y != 120 || got.Z != DefaultPressureThreshold {
		t.Fatalf("firm press ReadTouchPoint() = %+v, want (160, 120) z=%d", got, DefaultPressureThreshold)
	}
}

// An idle resistive panel reports a nonzero pressure below the threshold; it
// must not dispatch, and a later firm press must.
func TestCalibratedTouchIdlePanelDoesNotDispatch(t *testing.T) {
	raw := &rawTouch{p: touch.Point{X: 30000, Y: 30000, Z: 4000}}
	ct := &CalibratedTouch{Raw: raw, Cal: DefaultCalibration, Width: 320, Height: 240, Threshold: DefaultPressureThreshold}

	var handled int
	loop := touchpoll.New(ct, func(context.Context, touch.Point) error {
		handled++
		return nil
	}, touchpoll.Options{})

	for i := 0; i < 3; i++ {
		if _, err := loop.Step(context.Background()); err != nil {
			t.Fatalf("Step() err = %v", err)
		}
	}
	if handled != 0 {
		t.Fatalf("idle panel dispatched %d times, want 0", handled)
	}

	raw.p.Z = 40000
	if _, err := loop.Step(context.Background()); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if handled != 1 {
		t.Fatalf("firm press dispatched %d times, want 1", handled)
	}
}
