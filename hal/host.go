//go:build !tinygo

package hal

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"
)

// HostConfig tunes the desktop HAL.
type HostConfig struct {
	Width  int
	Height int
	// LinkFailures makes the first N Wi-Fi associations fail.
	LinkFailures int
	HTTPTimeout  time.Duration
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	touch  *hostTouch
	link   *hostLink
	client *http.Client
}

// New returns a host HAL with a 320x240 screen.
func New() HAL {
	return newHost(HostConfig{})
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 240
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		touch:  &hostTouch{},
		link:   &hostLink{failures: cfg.LinkFailures, logger: logger},
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LED() LED           { return h.led }
func (h *hostHAL) Display() Display   { return h.fb }
func (h *hostHAL) Touch() Touch       { return h.touch }
func (h *hostHAL) Link() Link         { return h.link }
func (h *hostHAL) HTTP() *http.Client { return h.client }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
