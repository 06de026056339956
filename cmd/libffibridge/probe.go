//go:build cgo

package main

/*
#include "ffibridge.h"

static int ffi_probe_calls;
static int32_t ffi_probe_status;

static void ffi_probe_cb(int32_t status) {
  ffi_probe_calls++;
  ffi_probe_status = status;
}

static ffi_status_cb ffi_probe_reset(void) {
  ffi_probe_calls = 0;
  ffi_probe_status = -1;
  return ffi_probe_cb;
}

static int ffi_probe_count(void) { return ffi_probe_calls; }
static int32_t ffi_probe_last(void) { return ffi_probe_status; }
*/
import "C"

// The probe is a C callback that records how often it ran and with which
// status. It is not reentrant; the self test is its only user.

func newProbe() C.ffi_status_cb {
	return C.ffi_probe_reset()
}

func probeResult() (calls int, status int32) {
	return int(C.ffi_probe_count()), int32(C.ffi_probe_last())
}
