package logo

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Compose centers src on a white width x height canvas, shrinking it first
// when it does not fit, and blends it using its own alpha. The returned
// canvas is fully opaque.
func Compose(src image.Image, width, height int) (*image.NRGBA, Placement, error) {
	if width <= 0 || height <= 0 {
		return nil, Placement{}, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, Placement{}, errors.Wrapf(ErrDecode, "empty image %dx%d", b.Dx(), b.Dy())
	}

	// sources without alpha come out of Clone fully opaque
	logo := imaging.Clone(src)

	p := Place(b.Dx(), b.Dy(), width, height)
	if p.Scaled {
		logo = imaging.Resize(logo, p.Width, p.Height, imaging.Lanczos)
	}

	canvas := imaging.New(width, height, color.White)
	return imaging.Overlay(canvas, logo, image.Pt(p.X, p.Y), 1.0), p, nil
}
