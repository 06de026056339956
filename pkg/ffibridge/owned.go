package ffibridge

import "sync"

// Owned ties a value to the one release call that ends its lifetime. Close
// runs the release once; Leak gives up ownership without releasing, for values
// that are about to cross the boundary and be released on the other side.
type Owned[T any] struct {
	mu      sync.Mutex
	value   T
	release func(T) error
	done    bool
}

// Own wraps v. release may be nil for values that need no cleanup.
func Own[T any](v T, release func(T) error) *Owned[T] {
	return &Owned[T]{value: v, release: release}
}

// Value returns the wrapped value, or ErrReleased once it was closed or leaked.
func (o *Owned[T]) Value() (T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		var zero T
		return zero, ErrReleased
	}
	return o.value, nil
}

// Close releases the value and returns the release error. Later calls are
// no-ops and return nil.
func (o *Owned[T]) Close() error {
	if o == nil {
		return nil
	}

	o.mu.Lock()
	if o.done {
		o.mu.Unlock()
		return nil
	}
	o.done = true
	v, release := o.value, o.release
	var zero T
	o.value = zero
	o.mu.Unlock()

	if release == nil {
		return nil
	}
	return release(v)
}

// Leak returns the value and drops responsibility for releasing it.
func (o *Owned[T]) Leak() (T, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var zero T
	if o.done {
		return zero, ErrReleased
	}
	v := o.value
	o.done = true
	o.value = zero
	return v, nil
}
