package source

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("source not found")
	ErrFetch    = errors.New("source fetch failed")
)

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress bool
}

// SetProgress enables a progress bar on stderr for remote sources.
func (l *Loader) SetProgress(on bool) {
	l.progress = on
}

func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load resolves ref to a local file or a fetched body. Local files are only
// checked for existence, they are read later by the caller.
func (l *Loader) Load(ref string) (*VFile, error) {
	if IsRemote(ref) {
		return l.fetch(ref)
	}

	info, err := l.fs.Stat(ref)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", ref)
		}
		return nil, errors.Wrapf(err, "stat %s", ref)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrNotFound, "%s is a directory", ref)
	}

	return newFile(ref, l.fs), nil
}

func (l *Loader) fetch(url string) (*VFile, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "%s: %v", url, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound, "%s", url)
	case code >= 300:
		return nil, errors.Wrapf(ErrFetch, "%s: %s", url, resp.Status())
	}

	var w io.Writer = io.Discard
	if l.progress {
		w = progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, w), resp.RawBody()); err != nil {
		return nil, errors.Wrapf(ErrFetch, "%s: %v", url, err)
	}

	l.log.With(zap.String("url", url), zap.Int("size", buf.Len())).Debug("source fetched")
	return newBytes(url, buf.Bytes()), nil
}
