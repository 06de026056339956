package ffibridge

import (
	"errors"

	"github.com/ffibridge/ffibridge-go/internal/arena"
)

var (
	// ErrInvalidHandle reports the null handle or one that was never issued.
	ErrInvalidHandle = errors.New("ffibridge: invalid handle")

	// ErrStaleHandle reports a handle whose object has already been released.
	ErrStaleHandle = errors.New("ffibridge: stale handle")

	// ErrHandleLimit reports that Config.MaxHandles objects are already live.
	ErrHandleLimit = errors.New("ffibridge: handle limit reached")

	// ErrLibraryClosed is returned by every Library method after Close.
	ErrLibraryClosed = errors.New("ffibridge: library closed")

	// ErrReleased is returned by scoped wrappers used after Close or Leak.
	ErrReleased = errors.New("ffibridge: resource already released")

	// ErrInvalidConfig wraps validation failures from Open.
	ErrInvalidConfig = errors.New("ffibridge: invalid config")
)

// RemapError converts handle table errors to the public error set.
func RemapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, arena.ErrNullHandle), errors.Is(err, arena.ErrUnknown):
		return ErrInvalidHandle
	case errors.Is(err, arena.ErrStaleHandle):
		return ErrStaleHandle
	case errors.Is(err, arena.ErrFull):
		return ErrHandleLimit
	case errors.Is(err, arena.ErrClosed):
		return ErrLibraryClosed
	default:
		return err
	}
}
