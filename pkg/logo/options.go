package logo

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"logoraw/pkg/source"
)

type Option func(c *Converter)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithFs sets the filesystem the output is written to. It is also used for
// local sources unless WithSource is given.
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}

func WithSource(loader *source.Loader) Option {
	return func(c *Converter) {
		c.src = loader
	}
}

// WithProgress draws a progress bar on stderr while encoding.
func WithProgress(on bool) Option {
	return func(c *Converter) {
		c.progress = on
	}
}
