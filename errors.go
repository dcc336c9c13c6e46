package tme

import "github.com/pkg/errors"

var (
	// ErrEngineExists is returned by New while another Engine is alive.
	ErrEngineExists = errors.New("engine already exists")

	// ErrNotInitialized is returned by calls that need Initialize first.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrUniformNotFound is returned when a program has no uniform with the
	// requested name.
	ErrUniformNotFound = errors.New("uniform not found")

	// ErrNilTexture is returned when a textured render call or uniform
	// upload receives a nil texture.
	ErrNilTexture = errors.New("nil texture")
)
