package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"portal/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Halt screen layout for proggy TinySZ8pt7b.
const (
	haltFontHeight = int16(10)
	haltFontOffset = int16(6)
)

// halt logs and draws the failure, then blocks forever.
func halt(h hal.HAL, kind, detail string) {
	drawHalt(h, kind, detail)
	select {}
}

func drawHalt(h hal.HAL, kind, detail string) {
	lines := []string{"Portal halted (" + kind + "):"}
	for _, line := range strings.Split(detail, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	d := h.Display()
	if d == nil {
		return
	}
	d.SetScroll(0)
	maxW, maxH := d.Size()
	_ = d.FillRectangle(0, 0, maxW, maxH, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = d.Display()
		return
	}
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	fg := color.RGBA{A: 0xFF}
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+haltFontHeight > maxH {
				_ = d.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, 0, y+haltFontOffset, chunk, fg)
			y += haltFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}

func drawTextLine(d hal.Display, font tinyfont.Fonter, fontWidth, x0, baseline int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, baseline, r, fg)
		x += fontWidth
	}
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
