package bitmap

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})
	src.Set(1, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	src.Set(0, 1, color.NRGBA{G: 0xFF, A: 0xFF})
	src.Set(1, 1, color.NRGBA{B: 0xFF, A: 0x80})

	bs := Encode(src)
	require.Len(t, bs, 2*2*4)

	want := []uint32{0x00123456, 0x00FF0000, 0x0000FF00, 0x000000FF}
	for i, w := range want {
		assert.Equal(t, w, binary.LittleEndian.Uint32(bs[i*4:]), "pixel %d", i)
		assert.Zero(t, bs[i*4+3], "top byte of pixel %d", i)
	}
}

func TestEncodeToMatchesEncode(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 7, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 80), B: uint8(x + y), A: 0xFF})
		}
	}

	var buf bytes.Buffer
	n, err := EncodeTo(&buf, src)
	require.NoError(t, err)
	assert.EqualValues(t, 7*3*4, n)
	assert.Equal(t, Encode(src), buf.Bytes())
}

func TestEncodeOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.Set(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF})

	bs := Encode(src)
	require.Len(t, bs, 8)
	r, g, b := Pixel(bs, 2, 1, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
}

func TestDecodeRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 0xFF})

	img, err := Decode(Encode(src), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	r, g, b, a := img.At(2, 1).RGBA()
	assert.Equal(t, []uint32{9 * 0x101, 8 * 0x101, 7 * 0x101, 0xFFFF}, []uint32{r, g, b, a})

	// out of bounds reads are black
	r, g, b, _ = img.At(5, 5).RGBA()
	assert.Zero(t, r+g+b)
}

func TestDecodeRejectsBadBuffer(t *testing.T) {
	_, err := Decode(make([]byte, 10), 2, 2)
	assert.True(t, errors.Is(err, ErrBufferSize))

	_, err = Decode(nil, 0, 2)
	assert.Error(t, err)
}

func TestColorModel(t *testing.T) {
	c := XRGB8888Model.Convert(color.RGBA64{R: 0xFFFF, G: 0x8080, B: 0, A: 0xFFFF})
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0x8080, 0, 0xFFFF}, []uint32{r, g, b, a})
}
