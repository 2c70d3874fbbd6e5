package logo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"logoraw/pkg/bitmap"
	"logoraw/pkg/source"
)

func New(opts ...Option) *Converter {
	c := &Converter{}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.src == nil {
		c.src = source.NewLoader(c.fs, c.logger)
	}

	return c
}

type Converter struct {
	fs       afero.Fs
	src      *source.Loader
	logger   *zap.Logger
	progress bool
}

type Result struct {
	Output    string
	Width     int
	Height    int
	Size      int64
	Placement Placement
}

// Convert renders cfg.Input onto the canvas and writes the raw buffer to
// cfg.Output, replacing any existing file.
func (c *Converter) Convert(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := c.logger.With(zap.String("input", cfg.Input), zap.String("output", cfg.Output))

	vf, err := c.src.Load(cfg.Input)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, errors.Wrap(ErrSourceNotFound, cfg.Input)
		}
		return nil, errors.Wrap(err, "load source")
	}

	src, err := c.decode(vf)
	if err != nil {
		return nil, err
	}

	log.With(zap.Int("w", src.Bounds().Dx()), zap.Int("h", src.Bounds().Dy())).Debug("decoded")

	canvas, p, err := Compose(src, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	log.With(
		zap.Bool("scaled", p.Scaled),
		zap.Float64("scale", p.Scale),
		zap.Stringer("placement", p),
	).Debug("composed")

	n, err := c.write(cfg.Output, canvas)
	if err != nil {
		return nil, err
	}

	log.With(zap.Int64("size", n)).Debug("written")

	return &Result{
		Output:    cfg.Output,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Size:      n,
		Placement: p,
	}, nil
}

func (c *Converter) decode(vf *source.VFile) (image.Image, error) {
	var r io.Reader

	if vf.IsFile() {
		f, err := vf.Open()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, errors.Wrap(ErrSourceNotFound, vf.Name())
			}
			return nil, errors.Wrapf(ErrDecode, "open %s: %v", vf.Name(), err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		bs, err := vf.Bytes()
		if err != nil {
			return nil, errors.Wrapf(ErrDecode, "%s: %v", vf.Name(), err)
		}
		r = bytes.NewReader(bs)
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", vf.Name(), err)
	}

	return img, nil
}

// write encodes canvas into a temporary sibling of path and renames it into
// place once complete.
func (c *Converter) write(path string, canvas image.Image) (int64, error) {
	tmp := fmt.Sprintf("%s.%s.tmp", path, xid.New().String())

	f, err := c.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.Wrapf(ErrWrite, "create %s: %v", path, err)
	}

	var w io.Writer = f
	if c.progress {
		b := canvas.Bounds()
		bar := progressbar.DefaultBytes(int64(b.Dx())*int64(b.Dy())*bitmap.BytesPerPixel, "Encoding")
		w = io.MultiWriter(f, bar)
	}

	n, err := bitmap.EncodeTo(w, canvas)
	if errC := f.Close(); err == nil {
		err = errC
	}
	if err == nil {
		err = c.fs.Rename(tmp, path)
	}

	if err != nil {
		_ = c.fs.Remove(tmp)
		return n, errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	return n, nil
}
