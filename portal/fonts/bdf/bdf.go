// Package bdf loads Glyph Bitmap Distribution Format fonts as tinyfont fonts.
//
// Only the subset needed for fixed bitmap text is read: FONT, FONTBOUNDINGBOX,
// FONT_ASCENT, FONT_DESCENT and the per-glyph ENCODING, DWIDTH, BBX and BITMAP
// records. Everything else is skipped.
package bdf

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	ErrSyntax   = errors.New("bdf: syntax error")
	ErrNoGlyphs = errors.New("bdf: font has no glyphs")
)

// Glyph is one character bitmap. Rows are packed MSB first, padded to a byte.
type Glyph struct {
	Rune     rune
	Width    uint8
	Height   uint8
	XAdvance uint8
	XOffset  int8
	YOffset  int8 // top row relative to the baseline
	Bitmap   []byte
}

func (g *Glyph) stride() int { return (int(g.Width) + 7) / 8 }

// Set reports whether the pixel at column x, row y is lit.
func (g *Glyph) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return false
	}
	i := y*g.stride() + x/8
	if i >= len(g.Bitmap) {
		return false
	}
	return g.Bitmap[i]&(0x80>>(x%8)) != 0
}

func (g *Glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for j := 0; j < int(g.Height); j++ {
		for i := 0; i < int(g.Width); i++ {
			if !g.Set(i, j) {
				continue
			}
			display.SetPixel(x+int16(g.XOffset)+int16(i), y+int16(g.YOffset)+int16(j), c)
		}
	}
}

func (g *Glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.Rune,
		Width:    g.Width,
		Height:   g.Height,
		XAdvance: g.XAdvance,
		XOffset:  g.XOffset,
		YOffset:  g.YOffset,
	}
}

// Font implements tinyfont.Fonter.
type Font struct {
	Name    string
	Ascent  int16
	Descent int16

	glyphs   map[rune]*Glyph
	fallback *Glyph
}

func (f *Font) GetYAdvance() uint8 {
	h := f.Ascent + f.Descent
	if h < 0 {
		return 0
	}
	if h > 255 {
		return 255
	}
	return uint8(h)
}

// GetGlyph returns the glyph for r, or the fallback glyph ('?' when present)
// for runes the font does not carry.
func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.fallback
}

// Has reports whether r has its own glyph.
func (f *Font) Has(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

// Len returns the number of loaded glyphs.
func (f *Font) Len() int { return len(f.glyphs) }

// LoadGlyphs keeps only the glyphs for runes in set, releasing the rest.
// The space and fallback glyphs are always kept.
func (f *Font) LoadGlyphs(set string) {
	keep := make(map[rune]*Glyph, len(set)+2)
	for _, r := range set {
		if g, ok := f.glyphs[r]; ok {
			keep[r] = g
		}
	}
	if g, ok := f.glyphs[' ']; ok {
		keep[' '] = g
	}
	if f.fallback != nil {
		keep[f.fallback.Rune] = f.fallback
	}
	f.glyphs = keep
}

// Load parses the BDF file at path in fsys.
func Load(fsys fs.FS, path string) (*Font, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bdf: open %s: %w", path, err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

type bbox struct {
	w, h, x, y int
}

// Parse reads a BDF font.
func Parse(r io.Reader) (*Font, error) {
	p := parser{sc: bufio.NewScanner(r)}
	f, err := p.parse()
	if err != nil {
		if p.line > 0 {
			return nil, fmt.Errorf("bdf: line %d: %w", p.line, err)
		}
		return nil, err
	}
	return f, nil
}

type parser struct {
	sc   *bufio.Scanner
	line int

	font    *Font
	fontBox bbox
	haveAsc bool
	haveDsc bool
}

func (p *parser) next() (string, []string, bool) {
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}
		return fields[0], fields[1:], true
	}
	return "", nil, false
}

func (p *parser) parse() (*Font, error) {
	p.font = &Font{glyphs: make(map[rune]*Glyph)}

	key, _, ok := p.next()
	if !ok {
		if err := p.sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty file", ErrSyntax)
	}
	if key != "STARTFONT" {
		return nil, fmt.Errorf("%w: expected STARTFONT, got %s", ErrSyntax, key)
	}

	for {
		key, args, ok := p.next()
		if !ok {
			if err := p.sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing ENDFONT", ErrSyntax)
		}

		switch key {
		case "FONT":
			p.font.Name = strings.Join(args, " ")
		case "FONTBOUNDINGBOX":
			b, err := parseBBox(args)
			if err != nil {
				return nil, err
			}
			p.fontBox = b
		case "FONT_ASCENT":
			v, err := atoi1(args)
			if err != nil {
				return nil, err
			}
			p.font.Ascent = int16(v)
			p.haveAsc = true
		case "FONT_DESCENT":
			v, err := atoi1(args)
			if err != nil {
				return nil, err
			}
			p.font.Descent = int16(v)
			p.haveDsc = true
		case "STARTCHAR":
			g, err := p.parseChar()
			if err != nil {
				return nil, err
			}
			if g != nil {
				p.font.glyphs[g.Rune] = g
			}
		case "ENDFONT":
			return p.finish()
		}
	}
}

func (p *parser) finish() (*Font, error) {
	f := p.font
	if len(f.glyphs) == 0 {
		return nil, ErrNoGlyphs
	}
	if !p.haveAsc {
		f.Ascent = int16(p.fontBox.h + p.fontBox.y)
	}
	if !p.haveDsc {
		f.Descent = int16(-p.fontBox.y)
	}
	if g, ok := f.glyphs['?']; ok {
		f.fallback = g
	} else {
		lowest := rune(-1)
		for r := range f.glyphs {
			if lowest < 0 || r < lowest {
				lowest = r
			}
		}
		f.fallback = f.glyphs[lowest]
	}
	return f, nil
}

// parseChar reads one STARTCHAR..ENDCHAR block. Glyphs with no encoding
// (ENCODING -1) are skipped and reported as nil.
func (p *parser) parseChar() (*Glyph, error) {
	g := &Glyph{}
	box := p.fontBox
	code := -1
	advance := -1

	for {
		key, args, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("%w: missing ENDCHAR", ErrSyntax)
		}
		switch key {
		case "ENCODING":
			v, err := atoi1(args)
			if err != nil {
				return nil, err
			}
			code = v
		case "DWIDTH":
			v, err := atoi1(args)
			if err != nil {
				return nil, err
			}
			advance = v
		case "BBX":
			b, err := parseBBox(args)
			if err != nil {
				return nil, err
			}
			box = b
		case "BITMAP":
			if err := checkBox(box); err != nil {
				return nil, err
			}
			g.Width = uint8(box.w)
			g.Height = uint8(box.h)
			g.XOffset = int8(box.x)
			g.YOffset = int8(-(box.y + box.h))
			if err := p.readBitmap(g); err != nil {
				return nil, err
			}
		case "ENDCHAR":
			if code < 0 {
				return nil, nil
			}
			if g.Bitmap == nil {
				if err := checkBox(box); err != nil {
					return nil, err
				}
				g.Width = uint8(box.w)
				g.Height = uint8(box.h)
				g.XOffset = int8(box.x)
				g.YOffset = int8(-(box.y + box.h))
				g.Bitmap = make([]byte, g.stride()*int(g.Height))
			}
			if advance < 0 {
				advance = box.w
			}
			if advance > 255 {
				return nil, fmt.Errorf("%w: DWIDTH %d too large", ErrSyntax, advance)
			}
			g.Rune = rune(code)
			g.XAdvance = uint8(advance)
			return g, nil
		}
	}
}

func (p *parser) readBitmap(g *Glyph) error {
	stride := g.stride()
	g.Bitmap = make([]byte, stride*int(g.Height))
	for row := 0; row < int(g.Height); row++ {
		key, args, ok := p.next()
		if !ok || len(args) != 0 {
			return fmt.Errorf("%w: short BITMAP", ErrSyntax)
		}
		if len(key) < stride*2 {
			return fmt.Errorf("%w: bitmap row %q shorter than %d bytes", ErrSyntax, key, stride)
		}
		for i := 0; i < stride; i++ {
			v, err := strconv.ParseUint(key[2*i:2*i+2], 16, 8)
			if err != nil {
				return fmt.Errorf("%w: bitmap row %q", ErrSyntax, key)
			}
			g.Bitmap[row*stride+i] = byte(v)
		}
	}
	return nil
}

func parseBBox(args []string) (bbox, error) {
	if len(args) != 4 {
		return bbox{}, fmt.Errorf("%w: bounding box needs 4 values", ErrSyntax)
	}
	var v [4]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return bbox{}, fmt.Errorf("%w: bounding box value %q", ErrSyntax, a)
		}
		v[i] = n
	}
	return bbox{w: v[0], h: v[1], x: v[2], y: v[3]}, nil
}

func checkBox(b bbox) error {
	if b.w < 0 || b.w > 255 || b.h < 0 || b.h > 255 {
		return fmt.Errorf("%w: glyph size %dx%d", ErrSyntax, b.w, b.h)
	}
	if b.x < -128 || b.x > 127 || b.y+b.h < -127 || b.y+b.h > 128 {
		return fmt.Errorf("%w: glyph offset %d,%d", ErrSyntax, b.x, b.y)
	}
	return nil
}

func atoi1(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%w: missing value", ErrSyntax)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrSyntax, args[0])
	}
	return v, nil
}
