package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"portal/hal"
	"portal/internal/buildinfo"
	"portal/portal/assets"
	"portal/portal/console"
	"portal/portal/fetch"
	"portal/portal/fonts/bdf"
	"portal/portal/label"
	"portal/portal/message"
	"portal/portal/netconn"
	"portal/portal/secrets"
	"portal/portal/touchpoll"

	"tinygo.org/x/drivers/touch"
)

// Mode selects what a touch does.
type Mode uint8

const (
	// ModeFetch fetches the click endpoint and shows its message.
	ModeFetch Mode = iota
	// ModeCoordinates shows where the screen was touched.
	ModeCoordinates
)

// DefaultGlyphs is the character set kept in memory after the font loads.
const DefaultGlyphs = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890- (),.!?:'"

// ErrNoDisplay is returned when the HAL has no screen to render on.
var ErrNoDisplay = errors.New("app: no display")

// Config selects assets, endpoints and touch behavior.
type Config struct {
	Assets      fs.FS
	SecretsPath string
	FontPath    string
	Glyphs      string
	BaseURL     string
	Retry       netconn.Policy
	Touch       touchpoll.Options
	Mode        Mode
	// LabelColor is used until a response carries a color.
	LabelColor color.RGBA
	// PollInterval paces the touch loop in Run.
	PollInterval time.Duration
}

// DefaultConfig returns the PyPortal configuration.
func DefaultConfig() Config {
	return Config{
		Assets:       assets.FS,
		SecretsPath:  secrets.DefaultPath,
		FontPath:     assets.LabelFont,
		Glyphs:       DefaultGlyphs,
		BaseURL:      fetch.DefaultBaseURL,
		Retry:        netconn.DefaultPolicy,
		Touch:        touchpoll.Options{Trigger: touchpoll.Edge, Threshold: touchpoll.DefaultThreshold},
		Mode:         ModeFetch,
		LabelColor:   label.White,
		PollInterval: 20 * time.Millisecond,
	}
}

type stage uint8

const (
	stageBoot stage = iota
	stageSecrets
	stageConnect
	stageFont
	stageHello
	stageRender
	stagePoll
)

// App is the message display. Each Step advances bring-up by one stage, and
// once the first message is on screen each Step polls the touchscreen once.
type App struct {
	ctx context.Context
	h   hal.HAL
	cfg Config

	stage stage
	err   error

	con    *console.Console
	creds  secrets.Credentials
	font   *bdf.Font
	client *fetch.Client
	hello  message.Message
	label  *label.Label
	poll   *touchpoll.Loop
}

// New returns an App at the boot stage. Nothing runs until Step.
func New(ctx context.Context, h hal.HAL, cfg Config) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	return &App{ctx: ctx, h: h, cfg: cfg}
}

// NewStep adapts an App to the host runners.
func NewStep(ctx context.Context, cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		return New(ctx, h, cfg).Step
	}
}

// Ready reports whether the first message is on screen and touches are handled.
func (a *App) Ready() bool { return a.stage == stagePoll && a.err == nil }

// Label returns the on-screen label, or nil before the first render.
func (a *App) Label() *label.Label { return a.label }

// Err returns the error that halted the app.
func (a *App) Err() error { return a.err }

// Step runs one unit of work. After the first error every call returns it.
func (a *App) Step() error {
	if a.err != nil {
		return a.err
	}
	if err := a.step(); err != nil {
		a.err = err
		a.logf("halt: %v", err)
		return err
	}
	return nil
}

func (a *App) step() error {
	switch a.stage {
	case stageBoot:
		a.con = console.New(a.h.Logger(), a.h.Display())
		a.con.Printf("portal %s", buildinfo.String())
	case stageSecrets:
		creds, err := secrets.Load(a.cfg.Assets, a.cfg.SecretsPath)
		if err != nil {
			if errors.Is(err, secrets.ErrMissing) {
				a.con.Println(secrets.Hint)
			}
			return err
		}
		a.creds = creds
	case stageConnect:
		c := &netconn.Connector{
			Link:   a.h.Link(),
			Policy: a.cfg.Retry,
			Logf:   a.con.Printf,
		}
		if _, err := c.Connect(a.ctx, a.creds); err != nil {
			return err
		}
	case stageFont:
		font, err := bdf.Load(a.cfg.Assets, a.cfg.FontPath)
		if err != nil {
			return err
		}
		if a.cfg.Glyphs != "" {
			font.LoadGlyphs(a.cfg.Glyphs)
		}
		a.font = font
		a.con.Printf("font: %s (%d glyphs)", font.Name, font.Len())
	case stageHello:
		httpc := a.h.HTTP()
		if httpc == nil {
			return errors.New("app: no http client")
		}
		a.client = fetch.New(httpc, a.cfg.BaseURL)
		msg, err := a.get(fetch.PathHello)
		if err != nil {
			return err
		}
		a.hello = msg
	case stageRender:
		if err := a.render(); err != nil {
			return err
		}
		a.poll = touchpoll.New(a.h.Touch(), a.handleTouch, a.cfg.Touch)
	case stagePoll:
		_, err := a.poll.Step(a.ctx)
		return err
	}
	a.stage++
	return nil
}

func (a *App) get(path string) (message.Message, error) {
	a.logf("fetch: GET %s", a.client.URL(path))
	msg, err := a.client.Get(a.ctx, path)
	if err != nil {
		return message.Message{}, err
	}
	a.logf("fetch: %q color=%#04x", msg.Text, msg.Packed())
	return msg, nil
}

func (a *App) render() error {
	d := a.h.Display()
	if d == nil {
		return ErrNoDisplay
	}
	a.con.Detach()

	w, h := d.Size()
	if err := d.FillRectangle(0, 0, w, h, label.Black); err != nil {
		return err
	}
	a.label = label.New(a.font, w, h)
	a.label.SetColor(a.cfg.LabelColor)
	return a.show(a.hello)
}

func (a *App) show(msg message.Message) error {
	a.label.SetText(msg.Text)
	if msg.HasColor {
		a.label.SetColor(msg.Color)
	}
	return a.label.Draw(a.h.Display())
}

func (a *App) handleTouch(ctx context.Context, p touch.Point) error {
	if led := a.h.LED(); led != nil {
		led.High()
		defer led.Low()
	}
	a.logf("touch: (%d, %d) z=%d", p.X, p.Y, p.Z)

	if a.cfg.Mode == ModeCoordinates {
		a.label.SetText(fmt.Sprintf("Touch coordinates: (%d, %d)", p.X, p.Y))
		return a.label.Draw(a.h.Display())
	}

	msg, err := a.get(fetch.PathClick)
	if err != nil {
		return fmt.Errorf("click: %w", err)
	}
	return a.show(msg)
}

func (a *App) logf(format string, args ...any) {
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// Run starts the app and blocks forever (TinyGo/native entrypoint).
// Any error or panic is drawn on screen before halting.
func Run(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			halt(h, "panic", fmt.Sprint(r))
		}
	}()

	a := New(context.Background(), h, cfg)
	for {
		if err := a.Step(); err != nil {
			halt(h, "error", err.Error())
		}
		if a.Ready() && cfg.PollInterval > 0 {
			time.Sleep(cfg.PollInterval)
		}
	}
}
