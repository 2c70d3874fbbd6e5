package bitmap

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// BytesPerPixel is the width of one encoded pixel.
const BytesPerPixel = 4

var ErrBufferSize = errors.New("buffer size mismatch")

func NewXRGB8888(r image.Rectangle) *XRGB8888 {
	return &XRGB8888{
		pixels: make([]byte, BytesPerPixel*r.Dx()*r.Dy()),
		stride: BytesPerPixel * r.Dx(),
		bounds: r,
	}
}

// XRGB8888 is a frame buffer image whose backing store is the raw asset
// layout: one little endian uint32 per pixel holding 0x00RRGGBB, rows top
// to bottom. It implements the draw.Image interface.
type XRGB8888 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *XRGB8888) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *XRGB8888) ColorModel() color.Model {
	return XRGB8888Model
}

// At implements the image.Image (and draw.Image) interface.
func (d *XRGB8888) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return xrgb(0)
	}
	i := d.offset(x, y)
	return xrgb(d.pixels[i+2])<<16 | xrgb(d.pixels[i+1])<<8 | xrgb(d.pixels[i])
}

// Set implements the draw.Image interface. Alpha is discarded, callers are
// expected to have blended against the background already.
func (d *XRGB8888) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return
	}
	v := XRGB8888Model.Convert(c).(xrgb)
	i := d.offset(x, y)
	d.pixels[i] = byte(v)
	d.pixels[i+1] = byte(v >> 8)
	d.pixels[i+2] = byte(v >> 16)
	d.pixels[i+3] = 0
}

func (d *XRGB8888) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + (x-d.bounds.Min.X)*BytesPerPixel
}

var XRGB8888Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(xrgb); ok {
		return v
	}
	r, g, b := rgb8(c)
	return xrgb(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
})

// rgb8 reduces a color to 8 bit channels. Non-premultiplied colors keep
// their own values; anything else goes through the 16 bit RGBA path.
func rgb8(c color.Color) (r, g, b uint8) {
	switch v := c.(type) {
	case color.NRGBA:
		return v.R, v.G, v.B
	case color.RGBA:
		return v.R, v.G, v.B
	}
	r16, g16, b16, _ := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8)
}

// xrgb implements the color.Color interface, the top byte is always zero
// and the color is always fully opaque.
type xrgb uint32

// RGBA implements the color.Color interface.
func (c xrgb) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xFF
	g = uint32(c>>8) & 0xFF
	b = uint32(c) & 0xFF
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}
