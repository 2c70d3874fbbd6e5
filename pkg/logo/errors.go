package logo

import "github.com/pkg/errors"

var (
	ErrSourceNotFound    = errors.New("source not found")
	ErrDecode            = errors.New("decode failed")
	ErrWrite             = errors.New("write failed")
	ErrInvalidDimensions = errors.New("invalid dimensions")
)
