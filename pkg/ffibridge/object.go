package ffibridge

// Object is a scoped owner of one opaque handle. Close releases the handle;
// Leak hands it off so the other side of the boundary can release it.
type Object struct {
	lib   *Library
	owned *Owned[Handle]
}

// NewObject creates an object owned by the returned wrapper.
func (l *Library) NewObject() (*Object, error) {
	h, err := l.CreateObject()
	if err != nil {
		return nil, err
	}
	return l.wrap(h), nil
}

// Adopt takes ownership of a handle created elsewhere, typically one that came
// back across the boundary.
func (l *Library) Adopt(h Handle) (*Object, error) {
	if _, err := l.objects.Get(h); err != nil {
		return nil, RemapError(err)
	}
	return l.wrap(h), nil
}

func (l *Library) wrap(h Handle) *Object {
	return &Object{
		lib: l,
		owned: Own(h, l.ReleaseObject),
	}
}

// Handle returns the underlying handle without giving up ownership.
func (o *Object) Handle() (Handle, error) {
	return o.owned.Value()
}

// Set overwrites the object's value.
func (o *Object) Set(v int32) error {
	h, err := o.owned.Value()
	if err != nil {
		return err
	}
	return o.lib.SetValue(h, v)
}

// Get returns the object's value.
func (o *Object) Get() (int32, error) {
	h, err := o.owned.Value()
	if err != nil {
		return 0, err
	}
	return o.lib.GetValue(h)
}

// Close releases the handle. Only the first call can fail; it reports
// ErrLibraryClosed or ErrStaleHandle when the handle was already gone.
func (o *Object) Close() error {
	return o.owned.Close()
}

// Leak returns the handle and stops the wrapper from releasing it.
func (o *Object) Leak() (Handle, error) {
	return o.owned.Leak()
}
