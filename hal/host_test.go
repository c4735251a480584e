//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"tinygo.org/x/drivers/netlink"
)

func TestHostFramebufferFillRectangleClips(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	if err := fb.FillRectangle(6, 2, 10, 10, red); err != nil {
		t.Fatalf("FillRectangle() err = %v", err)
	}
	if got := fb.At(7, 3); got.R != 0xFF || got.G != 0 || got.B != 0 {
		t.Fatalf("At(7,3) = %+v, want red", got)
	}
	if got := fb.At(5, 3); got.R != 0 {
		t.Fatalf("At(5,3) = %+v, want black", got)
	}
	if err := fb.FillRectangle(-4, -4, 2, 2, red); err != nil {
		t.Fatalf("FillRectangle(offscreen) err = %v", err)
	}
}

func TestHostFramebufferSetPixelStoresLittleEndianRGB565(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.SetPixel(1, 0, color.RGBA{R: 0xFF, A: 0xFF})
	fb.SetPixel(5, 5, color.RGBA{R: 0xFF, A: 0xFF})

	buf := make([]byte, 4)
	fb.snapshotRGB565(buf)
	if buf[2] != 0x00 || buf[3] != 0xF8 {
		t.Fatalf("pixel bytes = %#x %#x, want 0x0 0xf8", buf[2], buf[3])
	}
}

func TestHostTouchPressRelease(t *testing.T) {
	var tp hostTouch
	if p := tp.ReadTouchPoint(); p.Z != 0 {
		t.Fatalf("initial Z = %d, want 0", p.Z)
	}
	tp.press(10, 20)
	p := tp.ReadTouchPoint()
	if p.X != 10 || p.Y != 20 || p.Z == 0 {
		t.Fatalf("ReadTouchPoint() = %+v, want (10,20) pressed", p)
	}
	tp.release()
	if p := tp.ReadTouchPoint(); p.Z != 0 {
		t.Fatalf("released Z = %d, want 0", p.Z)
	}
}

func TestHostLinkFailsFirstN(t *testing.T) {
	l := &hostLink{failures: 2}
	params := &netlink.ConnectParams{Ssid: "home", Passphrase: "pw"}
	for i := 0; i < 2; i++ {
		if err := l.NetConnect(params); !errors.Is(err, ErrAssociation) {
			t.Fatalf("attempt %d err = %v, want ErrAssociation", i+1, err)
		}
	}
	if err := l.NetConnect(params); err != nil {
		t.Fatalf("attempt 3 err = %v, want nil", err)
	}
	if l.attempts != 3 || l.ssid != "home" {
		t.Fatalf("attempts=%d ssid=%q, want 3 %q", l.attempts, l.ssid, "home")
	}
}

func TestRunHeadlessScriptsTapsAndSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screen.png")
	var pressed int
	newApp := func(h HAL) func() error {
		return func() error {
			if h.Touch().ReadTouchPoint().Z > 0 {
				pressed++
			}
			return h.Display().FillRectangle(0, 0, 4, 4, color.RGBA{G: 0xFF, A: 0xFF})
		}
	}
	cfg := HeadlessConfig{
		Host:     HostConfig{Width: 16, Height: 8},
		Hz:       1000,
		Ticks:    10,
		TapEvery: 5,
		Snapshot: path,
	}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless() err = %v", err)
	}
	if pressed != 2 {
		t.Fatalf("pressed ticks = %d, want 2", pressed)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("snapshot size = %dx%d, want 16x8", b.Dx(), b.Dy())
	}
	_, g, _, _ := img.At(1, 1).RGBA()
	if g>>8 != 0xFF {
		t.Fatalf("snapshot green = %#x, want 0xff", g>>8)
	}
}

func TestRunHeadlessStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	newApp := func(HAL) func() error {
		return func() error { return boom }
	}
	err := RunHeadless(context.Background(), newApp, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() err = %v, want %v", err, boom)
	}
}
