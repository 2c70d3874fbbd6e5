package bitmap

import (
	"bufio"
	"image"
	"io"

	"github.com/pkg/errors"
)

// Encode flattens src into a raw XRGB8888 buffer of Dx*Dy*4 bytes.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	d := NewXRGB8888(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return d.pixels
}

// EncodeTo streams src row by row into w and returns the bytes written.
func EncodeTo(w io.Writer, src image.Image) (int64, error) {
	b := src.Bounds()
	row := NewXRGB8888(image.Rect(b.Min.X, 0, b.Max.X, 1))
	bw := bufio.NewWriter(w)

	var written int64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			row.Set(x, 0, src.At(x, y))
		}
		n, err := bw.Write(row.pixels)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// Decode wraps an existing raw buffer of w*h pixels without copying.
func Decode(bs []byte, w, h int) (*XRGB8888, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid dimensions %dx%d", w, h)
	}
	if len(bs) != w*h*BytesPerPixel {
		return nil, errors.Wrapf(ErrBufferSize, "got %d bytes, want %d", len(bs), w*h*BytesPerPixel)
	}

	return &XRGB8888{
		pixels: bs,
		stride: BytesPerPixel * w,
		bounds: image.Rect(0, 0, w, h),
	}, nil
}

// Pixel reads the channels of the pixel at (x, y) of a raw buffer w pixels wide.
func Pixel(bs []byte, w, x, y int) (r, g, b uint8) {
	i := BytesPerPixel * (y*w + x)
	return bs[i+2], bs[i+1], bs[i]
}
