package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"logoraw/pkg/logo"
	"logoraw/pkg/source"
)

var input = flag.StringP("input", "i", "", "logo image path or http(s) url (default arceos.png next to the binary)")
var output = flag.StringP("output", "o", "", "raw output path (default logo.raw next to the binary)")
var width = flag.Int("width", logo.DefaultWidth, "canvas width")
var height = flag.Int("height", logo.DefaultHeight, "canvas height")
var progress = flag.Bool("progress", false, "show progress bars")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger failed: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(logger, newConfig()),
		fx.Provide(
			func() afero.Fs {
				return afero.NewOsFs()
			},
			func(fs afero.Fs, logger *zap.Logger) *source.Loader {
				l := source.NewLoader(fs, logger)
				l.SetProgress(*progress)
				return l
			},
			func(fs afero.Fs, loader *source.Loader, logger *zap.Logger) *logo.Converter {
				return logo.New(
					logo.WithFs(fs),
					logo.WithSource(loader),
					logo.WithLogger(logger),
					logo.WithProgress(*progress),
				)
			},
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		logger.With(zap.Error(err)).Error(describe(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lo.Ternary(debug, zap.DebugLevel, zap.InfoLevel))
	cfg.DisableCaller = !debug
	cfg.DisableStacktrace = !debug
	return cfg.Build()
}

func newConfig() logo.Config {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}

	cfg := logo.DefaultConfig(dir)
	cfg.Width = *width
	cfg.Height = *height
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	return cfg
}

func run(c *logo.Converter, cfg logo.Config, logger *zap.Logger) error {
	res, err := c.Convert(cfg)
	if err != nil {
		return err
	}

	p := res.Placement
	logger.With(
		zap.String("output", res.Output),
		zap.String("dimensions", fmt.Sprintf("%dx%d", res.Width, res.Height)),
		zap.String("size", bytesize.New(float64(res.Size)).String()),
		zap.Int64("bytes", res.Size),
		zap.String("logo", fmt.Sprintf("%dx%d", p.Width, p.Height)),
		zap.String("position", fmt.Sprintf("(%d, %d)", p.X, p.Y)),
	).Info("saved")

	return nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, logo.ErrSourceNotFound):
		return "input file not found"
	case errors.Is(err, logo.ErrDecode):
		return "input is not a readable image"
	case errors.Is(err, logo.ErrWrite):
		return "cannot write output"
	case errors.Is(err, logo.ErrInvalidDimensions):
		return "invalid canvas dimensions"
	}
	return "conversion failed"
}
