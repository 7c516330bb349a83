//go:build !ebiten

package app

import (
	"context"
	"errors"

	"lifelog/internal/engine"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("the window viewer requires building with the 'ebiten' tag")

// RunWindow always fails in the headless build.
func RunWindow(context.Context, *engine.Engine, *Config) error {
	return ErrNoWindow
}
