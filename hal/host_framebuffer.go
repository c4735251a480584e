//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"

	"portal/portal/rgb565"

	"tinygo.org/x/drivers"
)

// hostFramebuffer is an RGB565 (little-endian) screen in memory.
type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	p := rgb565.PackRGBA(c)

	f.mu.Lock()
	defer f.mu.Unlock()
	off := iy*f.stride + ix*2
	f.buf[off] = byte(p)
	f.buf[off+1] = byte(p >> 8)
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	p := rgb565.PackRGBA(c)
	lo, hi := byte(p), byte(p>>8)

	f.mu.Lock()
	defer f.mu.Unlock()
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
	return nil
}

// Display is the refresh hook; the window reads the buffer on its own frame.
func (f *hostFramebuffer) Display() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) SetScroll(line int16) {
	_ = line
}

func (f *hostFramebuffer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// At returns the color stored at x, y.
func (f *hostFramebuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return rgb565.Unpack(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// image converts the buffer to RGBA.
func (f *hostFramebuffer) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i+1 < len(f.buf); i += 2 {
		c := rgb565.Unpack(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
		j := (i / 2) * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}
	return img
}

// writePNG saves the current screen.
func (f *hostFramebuffer) writePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
