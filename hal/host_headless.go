//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig
	Hz      int
	Ticks   uint64

	// TapEvery presses the screen at (TapX, TapY) for one tick every N ticks.
	TapEvery uint64
	TapX     int
	TapY     int

	// Snapshot, if set, receives a PNG of the screen when the runner returns.
	Snapshot string
}

// RunHeadless runs the program without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := newHost(cfg.Host)
	err := runHeadless(ctx, h, newApp(h), cfg)
	if cfg.Snapshot != "" {
		if serr := h.fb.writePNG(cfg.Snapshot); serr != nil && err == nil {
			err = fmt.Errorf("snapshot: %w", serr)
		}
	}
	return err
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			scriptTouch(h.touch, tick, cfg)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func scriptTouch(t *hostTouch, tick uint64, cfg HeadlessConfig) {
	if cfg.TapEvery == 0 {
		return
	}
	if tick%cfg.TapEvery == 0 {
		t.press(cfg.TapX, cfg.TapY)
		return
	}
	t.release()
}
