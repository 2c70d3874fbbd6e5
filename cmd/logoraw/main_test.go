package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"logoraw/pkg/logo"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, "input file not found", describe(errors.Wrap(logo.ErrSourceNotFound, "arceos.png")))
	assert.Equal(t, "input is not a readable image", describe(errors.Wrap(logo.ErrDecode, "x")))
	assert.Equal(t, "cannot write output", describe(errors.Wrap(logo.ErrWrite, "x")))
	assert.Equal(t, "invalid canvas dimensions", describe(logo.ErrInvalidDimensions))
	assert.Equal(t, "conversion failed", describe(errors.New("boom")))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.DebugLevel))

	l, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
