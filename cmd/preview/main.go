package main

import (
	"log"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"logoraw/pkg/bitmap"
	"logoraw/pkg/logo"
)

var input = flag.StringP("input", "i", logo.DefaultOutput, "raw buffer to preview")
var output = flag.StringP("output", "o", "preview.png", "image to write, format follows the extension")
var width = flag.Int("width", logo.DefaultWidth, "buffer width")
var height = flag.Int("height", logo.DefaultHeight, "buffer height")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	if err := render(afero.NewOsFs(), *input, *output, *width, *height); err != nil {
		log.Fatal(err)
	}

	logger.With(zap.String("input", *input), zap.String("output", *output)).Info("rendered")
}

func render(fs afero.Fs, in, out string, w, h int) error {
	bs, err := afero.ReadFile(fs, in)
	if err != nil {
		return err
	}

	img, err := bitmap.Decode(bs, w, h)
	if err != nil {
		return err
	}

	format, err := imaging.FormatFromFilename(out)
	if err != nil {
		return err
	}

	f, err := fs.Create(out)
	if err != nil {
		return err
	}

	if err := imaging.Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
