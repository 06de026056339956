// Package ffibridge holds the Go side of a small C-linkage boundary: the
// records and handles it exchanges, the rules for who owns what, and the pure
// functions the exported entry points delegate to.
//
// The shared library itself lives in cmd/libffibridge; it is the only package
// that uses cgo. Everything here compiles without a C toolchain.
//
// # Ownership
//
// Every create operation hands sole ownership to its caller and has exactly
// one matching release. Inside Go the pairing is expressed with scoped values:
//
//	lib := ffibridge.MustOpen(ffibridge.DefaultConfig())
//	defer lib.Close()
//
//	obj, err := lib.NewObject()
//	if err != nil {
//	    return err
//	}
//	defer obj.Close()
//	obj.Set(42)
//
// Object.Leak detaches the handle from the scoped wrapper so it can be passed
// across the boundary; the receiving side releases it with
// Library.ReleaseObject.
//
// # Handles
//
// Objects are addressed by arena handles rather than pointers. A released
// handle is reported as stale (ErrStaleHandle) and never aliases a newer
// object.
package ffibridge
