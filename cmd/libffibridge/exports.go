//go:build cgo

package main

/*
#include <stdlib.h>
#include <string.h>
#include "ffibridge.h"
*/
import "C"

import (
	"context"
	"unsafe"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge"
	"github.com/ffibridge/ffibridge-go/pkg/ffibridge/logging"
)

// Ownership-transfer allocator

//export create_plain_record
func create_plain_record(identifier C.int32_t, name *C.char, value C.double) *C.ffi_plain_record {
	rec := (*C.ffi_plain_record)(mustMalloc(C.size_t(C.sizeof_ffi_plain_record)))
	rec.identifier = identifier
	rec.value = value
	writeName(rec, name)

	lib.Logger().Debug(context.Background(), "plain record created", "identifier", int32(identifier))
	return rec
}

//export release_plain_record
func release_plain_record(rec *C.ffi_plain_record) {
	if rec == nil {
		return
	}
	if lib.Config().ZeroizeOnRelease {
		scrubRecord(rec)
	}
	freeC(unsafe.Pointer(rec))
}

//export create_point
func create_point(x, y C.double) *C.ffi_point {
	p := (*C.ffi_point)(mustMalloc(C.size_t(C.sizeof_ffi_point)))
	p.x = x
	p.y = y
	return p
}

//export release_point
func release_point(p *C.ffi_point) {
	if p == nil {
		return
	}
	freeC(unsafe.Pointer(p))
}

// create_raw_buffer returns size uninitialised int32 slots. A zero size still
// yields a valid, releasable pointer.
//
//export create_raw_buffer
func create_raw_buffer(size C.size_t) *C.int32_t {
	n := size
	if n == 0 {
		n = 1
	}
	return (*C.int32_t)(mustMalloc(n * C.size_t(unsafe.Sizeof(int32(0)))))
}

// release_raw_buffer frees buffers from create_raw_buffer and reverse_string.
//
//export release_raw_buffer
func release_raw_buffer(buf unsafe.Pointer) {
	if buf == nil {
		return
	}
	freeC(buf)
}

// Opaque-handle wrapper

//export create_opaque_object
func create_opaque_object() C.ffi_handle {
	h, err := lib.CreateObject()
	if err != nil {
		lib.Logger().Warn(context.Background(), "create_opaque_object failed", "error", err)
		return 0
	}
	return C.ffi_handle(h)
}

//export release_opaque_object
func release_opaque_object(h C.ffi_handle) {
	if err := lib.ReleaseObject(ffibridge.Handle(h)); err != nil {
		lib.Logger().Warn(context.Background(), "release_opaque_object on invalid handle", "handle", uint64(h), "error", err)
	}
}

//export set_value
func set_value(h C.ffi_handle, v C.int) {
	if err := lib.SetValue(ffibridge.Handle(h), int32(v)); err != nil {
		lib.Logger().Warn(context.Background(), "set_value on invalid handle", "handle", uint64(h), "error", err)
	}
}

//export get_value
func get_value(h C.ffi_handle) C.int {
	v, err := lib.GetValue(ffibridge.Handle(h))
	if err != nil {
		lib.Logger().Warn(context.Background(), "get_value on invalid handle", "handle", uint64(h), "error", err)
		return 0
	}
	return C.int(v)
}

// Callback bridge

// register_callback calls cb once with status 200 before returning. The
// callback is not stored.
//
//export register_callback
func register_callback(cb C.ffi_status_cb) {
	if cb == nil {
		lib.Logger().Warn(context.Background(), "register_callback called with NULL callback")
		return
	}
	ffibridge.RegisterCallback(ffibridge.CallbackFunc(func(status int32) {
		invokeStatus(cb, status)
	}))
}

// Array and string marshaling

//export sum_array
func sum_array(buffer *C.int32_t, length C.size_t) C.int32_t {
	return C.int32_t(ffibridge.SumArray(int32s(buffer, int(length))))
}

// reverse_string returns a new buffer the caller frees with
// release_raw_buffer.
//
//export reverse_string
func reverse_string(input *C.char) *C.char {
	var n C.size_t
	if input != nil {
		n = C.strlen(input)
	}

	out := mustMalloc(n + 1)
	dst := unsafe.Slice((*byte)(out), int(n)+1)
	if n > 0 {
		src := unsafe.Slice((*byte)(unsafe.Pointer(input)), int(n))
		copy(dst, ffibridge.ReverseBytes(src))
	}
	dst[n] = 0
	return (*C.char)(out)
}

// get_string returns library-owned static text. Do not free it.
//
//export get_string
func get_string() *C.char {
	return greeting
}

// process_string reads input for the duration of the call only.
//
//export process_string
func process_string(input *C.char) {
	if input == nil {
		return
	}
	s := C.GoString(input)
	lib.Logger().Debug(context.Background(), "string processed", "len", len(s), logging.Redacted("input"))
}
