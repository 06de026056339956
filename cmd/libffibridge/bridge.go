//go:build cgo

package main

/*
#include <stdlib.h>
#include <string.h>
#include "ffibridge.h"

static inline void ffi_invoke_status_cb(ffi_status_cb cb, int32_t status) {
  cb(status);
}
*/
import "C"

import (
	"unsafe"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge"
)

// greeting is allocated once and owned by the library for the life of the
// process; get_string hands out this pointer and callers must not free it.
var greeting = C.CString(ffibridge.Greeting)

// mustMalloc never returns nil. Allocation failure is not a recoverable
// condition at this boundary.
func mustMalloc(size C.size_t) unsafe.Pointer {
	ptr := C.malloc(size)
	if ptr == nil {
		panic("out of memory")
	}
	return ptr
}

func freeC(ptr unsafe.Pointer) {
	C.free(ptr)
}

func cString(s string) *C.char {
	return C.CString(s)
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func invokeStatus(cb C.ffi_status_cb, status int32) {
	C.ffi_invoke_status_cb(cb, C.int32_t(status))
}

// writeName copies at most MaxNameLen bytes of name into rec and terminates
// it. name is never read past that bound.
func writeName(rec *C.ffi_plain_record, name *C.char) {
	var s string
	if name != nil {
		n := C.strnlen(name, ffibridge.MaxNameLen)
		s = C.GoStringN(name, C.int(n))
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(&rec.name[0])), ffibridge.NameCapacity)
	n := copy(dst[:ffibridge.MaxNameLen], ffibridge.TruncateName(s))
	clear(dst[n:])
}

func readRecord(rec *C.ffi_plain_record) ffibridge.Record {
	return ffibridge.Record{
		ID:    int32(rec.identifier),
		Name:  C.GoString(&rec.name[0]),
		Value: float64(rec.value),
	}
}

func readPoint(p *C.ffi_point) ffibridge.Point {
	return ffibridge.Point{X: float64(p.x), Y: float64(p.y)}
}

func scrubRecord(rec *C.ffi_plain_record) {
	ffibridge.Zeroize(unsafe.Slice((*byte)(unsafe.Pointer(rec)), int(C.sizeof_ffi_plain_record)))
}

func int32s(buf *C.int32_t, length int) []int32 {
	if length == 0 || buf == nil {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(buf)), length)
}
