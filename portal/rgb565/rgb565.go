// Package rgb565 converts between 8-bit RGB and the 16-bit packed color
// used by the display: rrrrrggggggbbbbb.
package rgb565

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrBadHex = errors.New("rgb565: bad hex color")

// Pack keeps the top 5/6/5 bits of each channel.
func Pack(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// PackRGBA ignores alpha.
func PackRGBA(c color.RGBA) uint16 { return Pack(c.R, c.G, c.B) }

// Unpack expands a packed color back to 8 bits per channel. The low bits are
// filled by repeating the high bits, so 0x1F maps to 0xFF.
func Unpack(p uint16) color.RGBA {
	rr := uint8((p >> 11) & 0x1F)
	gg := uint8((p >> 5) & 0x3F)
	bb := uint8(p & 0x1F)
	return color.RGBA{
		R: rr<<3 | rr>>2,
		G: gg<<2 | gg>>4,
		B: bb<<3 | bb>>2,
		A: 0xFF,
	}
}

// ParseHex parses "#RRGGBB". The leading '#' is optional.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// FromHex parses "#RRGGBB" straight into a packed color.
func FromHex(s string) (uint16, error) {
	c, err := ParseHex(s)
	if err != nil {
		return 0, err
	}
	return PackRGBA(c), nil
}
