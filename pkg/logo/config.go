package logo

import (
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	DefaultWidth  = 1920
	DefaultHeight = 1200
	DefaultInput  = "arceos.png"
	DefaultOutput = "logo.raw"
)

type Config struct {
	Width  int
	Height int
	Input  string
	Output string
}

// DefaultConfig places the default input and output next to each other in dir.
func DefaultConfig(dir string) Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Input:  filepath.Join(dir, DefaultInput),
		Output: filepath.Join(dir, DefaultOutput),
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", c.Width, c.Height)
	}
	if c.Input == "" {
		return errors.New("input path is empty")
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// Size is the exact byte length of the raw output for this canvas.
func (c Config) Size() int64 {
	return int64(c.Width) * int64(c.Height) * 4
}
