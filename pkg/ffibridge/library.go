package ffibridge

import (
	"context"

	"github.com/ffibridge/ffibridge-go/internal/arena"
	"github.com/ffibridge/ffibridge-go/pkg/ffibridge/logging"
)

// Handle is the opaque reference handed across the boundary for an object.
// The zero Handle is the null handle.
type Handle = arena.Handle

// Counter is the value holder behind an opaque handle.
type Counter struct {
	value int32
}

// Get returns the current value.
func (c *Counter) Get() int32 { return c.value }

// Set overwrites the value.
func (c *Counter) Set(v int32) { c.value = v }

// Library owns the handle table for opaque objects.
type Library struct {
	cfg     Config
	logger  logging.Logger
	objects *arena.Table[*Counter]
}

// Open validates cfg and returns a ready Library.
func Open(cfg Config) (*Library, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Library{
		cfg:     cfg,
		logger:  cfg.logger(),
		objects: arena.New[*Counter](cfg.MaxHandles),
	}, nil
}

// MustOpen is Open for configurations known to be valid. It panics otherwise.
func MustOpen(cfg Config) *Library {
	lib, err := Open(cfg)
	if err != nil {
		panic(err)
	}
	return lib
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config {
	return l.cfg
}

// Logger returns the library logger.
func (l *Library) Logger() logging.Logger {
	return l.logger
}

// Close drops every live object. Handles issued before Close stop resolving.
// Closing twice returns ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	leaked := 0
	if err := l.objects.Close(func(*Counter) { leaked++ }); err != nil {
		return RemapError(err)
	}
	if leaked > 0 {
		l.logger.Warn(context.Background(), "library closed with live objects", "count", leaked)
	}
	return nil
}

// CreateObject allocates a Counter and returns its handle. The caller owns the
// handle until ReleaseObject.
func (l *Library) CreateObject() (Handle, error) {
	h, err := l.objects.Insert(&Counter{})
	if err != nil {
		return 0, RemapError(err)
	}
	l.logger.Debug(context.Background(), "object created", "handle", uint64(h))
	return h, nil
}

// ReleaseObject frees the object behind h.
func (l *Library) ReleaseObject(h Handle) error {
	if _, err := l.objects.Remove(h); err != nil {
		return RemapError(err)
	}
	l.logger.Debug(context.Background(), "object released", "handle", uint64(h))
	return nil
}

// SetValue overwrites the value of the object behind h.
func (l *Library) SetValue(h Handle, v int32) error {
	c, err := l.objects.Get(h)
	if err != nil {
		return RemapError(err)
	}
	c.Set(v)
	return nil
}

// GetValue returns the value of the object behind h.
func (l *Library) GetValue(h Handle) (int32, error) {
	c, err := l.objects.Get(h)
	if err != nil {
		return 0, RemapError(err)
	}
	return c.Get(), nil
}

// Live reports the number of objects not yet released.
func (l *Library) Live() int {
	return l.objects.Len()
}
