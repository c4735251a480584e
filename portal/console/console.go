// Package console mirrors log lines onto the screen while the device boots.
package console

import (
	"fmt"
	"image/color"

	"portal/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Console writes every line to the logger and, while attached, to a
// terminal on the display.
type Console struct {
	log  hal.Logger
	disp hal.Display
	term *tinyterm.Terminal
}

// New returns a console. d may be nil for a log-only console.
func New(log hal.Logger, d hal.Display) *Console {
	c := &Console{log: log}
	c.Attach(d)
	return c
}

// Attach clears d and starts mirroring lines onto it.
func (c *Console) Attach(d hal.Display) {
	if d == nil {
		c.disp, c.term = nil, nil
		return
	}
	d.SetScroll(0)
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, color.RGBA{A: 0xFF})

	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	c.disp, c.term = d, t
	_ = d.Display()
}

// Detach stops drawing and undoes the terminal's hardware scroll, so the
// display is addressed from row 0 again. Lines still go to the logger.
func (c *Console) Detach() {
	if c.disp != nil {
		c.disp.SetScroll(0)
	}
	c.disp, c.term = nil, nil
}

// Attached reports whether lines are drawn on screen.
func (c *Console) Attached() bool { return c.term != nil }

// Println writes one line.
func (c *Console) Println(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}
	if c.term == nil {
		return
	}
	_, _ = c.term.Write([]byte(s))
	_, _ = c.term.Write([]byte("\r\n"))
	_ = c.disp.Display()
}

// Printf formats one line.
func (c *Console) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}
