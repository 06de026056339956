//go:build cgo

// Command libffibridge is the C-linkage face of ffibridge. Build it with
//
//	go build -buildmode=c-shared -o libffibridge.so ./cmd/libffibridge
//
// or -buildmode=c-archive for static linking. Types shared with callers are
// declared in ffibridge.h.
//
// Every create entry point hands ownership to the caller, who ends it with
// the matching release. Pairs must not be mixed. Memory for records, points,
// raw buffers and reversed strings comes from the C allocator; opaque objects
// live in a Go handle table and are addressed by ffi_handle values.
//
// This is the only package in the module that uses cgo.
package main

import "github.com/ffibridge/ffibridge-go/pkg/ffibridge"

// lib backs the opaque object entry points for the lifetime of the process.
var lib = ffibridge.MustOpen(ffibridge.DefaultConfig())

func main() {}
