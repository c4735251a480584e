//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"portal/app"
	"portal/hal"
	"portal/portal/touchpoll"
)

func main() {
	var cfg hal.HeadlessConfig
	appCfg := app.DefaultConfig()
	var level, coords bool
	var secretsFile string

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Uint64Var(&cfg.TapEvery, "tap-every", 0, "Tap the screen center every N ticks in headless mode (0 = never).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write a PNG of the screen here when headless mode stops.")
	flag.IntVar(&cfg.Host.LinkFailures, "link-failures", 0, "Fail the first N Wi-Fi associations.")
	flag.StringVar(&secretsFile, "secrets", "", "Read Wi-Fi secrets from this file instead of the embedded one.")
	flag.StringVar(&appCfg.FontPath, "font", appCfg.FontPath, "Label font (BDF) path inside the assets.")
	flag.StringVar(&appCfg.BaseURL, "base-url", appCfg.BaseURL, "Base URL of the message API.")
	flag.IntVar(&appCfg.Retry.MaxAttempts, "max-attempts", appCfg.Retry.MaxAttempts, "Wi-Fi attempts before giving up (0 = forever).")
	flag.BoolVar(&level, "level", false, "Handle a held touch on every poll instead of once per press.")
	flag.BoolVar(&coords, "coords", false, "Show touch coordinates instead of fetching a message.")
	flag.Parse()

	if secretsFile != "" {
		appCfg.Assets = overlay{base: appCfg.Assets, name: appCfg.SecretsPath, path: secretsFile}
	}
	if level {
		appCfg.Touch.Trigger = touchpoll.Level
	}
	if coords {
		appCfg.Mode = app.ModeCoordinates
	}
	cfg.Host.HTTPTimeout = 30 * time.Second
	cfg.TapX, cfg.TapY = 160, 120

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newApp := app.NewStep(ctx, appCfg)
	var err error
	if cfg.Enabled {
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(cfg.Host, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// overlay serves one file from the host filesystem and the rest from base.
type overlay struct {
	base fs.FS
	name string
	path string
}

func (o overlay) Open(name string) (fs.File, error) {
	if name == o.name {
		return os.Open(o.path)
	}
	return o.base.Open(name)
}
