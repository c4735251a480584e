// Package label draws a single line of text centered on a display.
package label

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Surface is what a label draws on.
type Surface interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

type rect struct {
	x, y, w, h int16
}

// Label is mutable on-screen text. Its position is recomputed every time its
// text changes so it stays centered.
type Label struct {
	font   tinyfont.Fonter
	text   string
	fg, bg color.RGBA

	screenW, screenH int16

	box    rect
	ascent int16

	drawn    rect
	hasDrawn bool
}

// New returns an empty label for a screenW x screenH display.
func New(font tinyfont.Fonter, screenW, screenH int16) *Label {
	l := &Label{
		font:    font,
		fg:      White,
		bg:      Black,
		screenW: screenW,
		screenH: screenH,
	}
	l.layout()
	return l
}

func (l *Label) Text() string           { return l.text }
func (l *Label) Color() color.RGBA      { return l.fg }
func (l *Label) Background() color.RGBA { return l.bg }

// SetText replaces the text and recenters the label. Line breaks are drawn as spaces.
func (l *Label) SetText(s string) {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
	l.text = s
	l.layout()
}

func (l *Label) SetColor(c color.RGBA)      { l.fg = c }
func (l *Label) SetBackground(c color.RGBA) { l.bg = c }

// Bounds returns the text box in screen coordinates.
func (l *Label) Bounds() (x, y, w, h int16) {
	return l.box.x, l.box.y, l.box.w, l.box.h
}

func (l *Label) layout() {
	w, h, ascent := Measure(l.font, l.text)
	l.box = rect{
		x: Center(l.screenW, w),
		y: Center(l.screenH, h),
		w: w,
		h: h,
	}
	l.ascent = ascent
}

// Draw erases the previously drawn text, draws the current text and
// refreshes the display.
func (l *Label) Draw(d Surface) error {
	if l.hasDrawn && l.drawn.w > 0 && l.drawn.h > 0 {
		if err := d.FillRectangle(l.drawn.x, l.drawn.y, l.drawn.w, l.drawn.h, l.bg); err != nil {
			return err
		}
	}
	if l.text != "" && l.font != nil {
		tinyfont.WriteLine(d, l.font, l.box.x, l.box.y+l.ascent, l.text, l.fg)
	}
	l.drawn = l.box
	l.hasDrawn = true
	return d.Display()
}

// Center returns the offset that centers inner within outer, rounding toward
// negative infinity so an oversized label still splits its overflow evenly.
func Center(outer, inner int16) int16 {
	d := int32(outer) - int32(inner)
	q := d / 2
	if d < 0 && d%2 != 0 {
		q--
	}
	return int16(q)
}

// Measure returns the advance width of s, the height of its ink box and the
// distance from the top of that box to the baseline.
func Measure(font tinyfont.Fonter, s string) (w, h, ascent int16) {
	if font == nil || s == "" {
		return 0, 0, 0
	}
	_, outbox := tinyfont.LineWidth(font, s)
	w = int16(outbox)

	var top, bottom int16
	first := true
	for _, r := range s {
		info := font.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		t := int16(info.YOffset)
		b := t + int16(info.Height)
		if first || t < top {
			top = t
		}
		if first || b > bottom {
			bottom = b
		}
		first = false
	}
	if first {
		return w, 0, 0
	}
	return w, bottom - top, -top
}
