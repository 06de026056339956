package ffibridge

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge/logging"
)

// validate is shared; building a validator caches struct metadata.
var validate = validator.New()

// Config carries the knobs of a Library.
type Config struct {
	// Logger receives library diagnostics. Nil discards them.
	Logger logging.Logger

	// MaxHandles caps the number of live objects. Zero means unbounded.
	MaxHandles int `validate:"gte=0"`

	// ZeroizeOnRelease overwrites plain records with zeros before their
	// memory is returned to the allocator.
	ZeroizeOnRelease bool
}

// DefaultConfig returns the configuration the shared library starts with.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}
