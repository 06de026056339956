//go:build cgo

package main

/*
#include "ffibridge.h"
*/
import "C"

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge"
)

// ffibridge_self_test drives every entry point through the C calling
// convention and returns 0 when all of them behave, 1 otherwise.
//
//export ffibridge_self_test
func ffibridge_self_test() C.int {
	if err := selfTest(); err != nil {
		lib.Logger().Error(context.Background(), "self test failed", "error", err)
		return 1
	}
	return 0
}

func selfTest() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"plain record", checkPlainRecord},
		{"point", checkPoint},
		{"raw buffer", checkRawBuffer},
		{"opaque object", checkOpaqueObject},
		{"callback", checkCallback},
		{"reverse string", checkReverseString},
		{"static string", checkStaticString},
	}
	for _, c := range checks {
		if err := c.fn(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

func checkPlainRecord() error {
	for _, in := range []string{"", "short", strings.Repeat("n", ffibridge.MaxNameLen), strings.Repeat("long", 40)} {
		name := ffibridge.Own(cString(in), func(p *C.char) error {
			freeC(unsafe.Pointer(p))
			return nil
		})
		cname, _ := name.Value()

		rec := ffibridge.Own(create_plain_record(-7, cname, 2.5), func(p *C.ffi_plain_record) error {
			release_plain_record(p)
			return nil
		})
		ptr, _ := rec.Value()
		got := readRecord(ptr)
		want := ffibridge.NewRecord(-7, in, 2.5)
		terminated := ptr.name[ffibridge.MaxNameLen] == 0

		_ = rec.Close()
		_ = name.Close()

		if got != want {
			return fmt.Errorf("read back %+v, want %+v", got, want)
		}
		if !terminated {
			return fmt.Errorf("name of %d-byte input not terminated at capacity", len(in))
		}
	}
	return nil
}

func checkPoint() error {
	for _, want := range []ffibridge.Point{{X: 0, Y: 0}, {X: 1.25, Y: -3.5}, {X: math.MaxFloat64, Y: math.SmallestNonzeroFloat64}} {
		p := create_point(C.double(want.X), C.double(want.Y))
		got := readPoint(p)
		release_point(p)
		if math.Float64bits(got.X) != math.Float64bits(want.X) || math.Float64bits(got.Y) != math.Float64bits(want.Y) {
			return fmt.Errorf("read back %+v, want %+v", got, want)
		}
	}
	return nil
}

func checkRawBuffer() error {
	if got := sum_array(nil, 0); got != 0 {
		return fmt.Errorf("sum of empty array = %d", got)
	}

	buf := ffibridge.Own(create_raw_buffer(3), func(p *C.int32_t) error {
		release_raw_buffer(unsafe.Pointer(p))
		return nil
	})
	defer func() { _ = buf.Close() }()
	ptr, _ := buf.Value()

	values := int32s(ptr, 3)
	copy(values, []int32{1, 2, 3})
	if got := sum_array(ptr, 3); got != 6 {
		return fmt.Errorf("sum of [1 2 3] = %d", got)
	}

	copy(values, []int32{math.MaxInt32, 1, 0})
	if got := int32(sum_array(ptr, 3)); got != math.MinInt32 {
		return fmt.Errorf("overflowing sum = %d, want wrap to %d", got, int32(math.MinInt32))
	}

	empty := create_raw_buffer(0)
	if empty == nil {
		return fmt.Errorf("zero-size buffer is NULL")
	}
	release_raw_buffer(unsafe.Pointer(empty))
	return nil
}

func checkOpaqueObject() error {
	h := create_opaque_object()
	if h == 0 {
		return fmt.Errorf("null handle")
	}
	defer release_opaque_object(h)

	if got := get_value(h); got != 0 {
		return fmt.Errorf("fresh object holds %d", got)
	}
	for _, v := range []int32{1, -1, math.MaxInt32, math.MinInt32, 42} {
		set_value(h, C.int(v))
		if got := int32(get_value(h)); got != v {
			return fmt.Errorf("get after set(%d) = %d", v, got)
		}
	}
	return nil
}

func checkCallback() error {
	register_callback(newProbe())
	calls, status := probeResult()
	if calls != 1 || status != ffibridge.StatusOK {
		return fmt.Errorf("callback ran %d times with status %d, want once with %d", calls, status, ffibridge.StatusOK)
	}
	return nil
}

func checkReverseString() error {
	for _, in := range []string{"", "a", "abc", "héllo wörld"} {
		cin := cString(in)
		once := reverse_string(cin)
		twice := reverse_string(once)
		gotOnce, gotTwice := goString(once), goString(twice)
		release_raw_buffer(unsafe.Pointer(twice))
		release_raw_buffer(unsafe.Pointer(once))
		freeC(unsafe.Pointer(cin))

		if gotOnce != ffibridge.ReverseString(in) {
			return fmt.Errorf("reverse(%q) = %q", in, gotOnce)
		}
		if gotTwice != in {
			return fmt.Errorf("reverse(reverse(%q)) = %q", in, gotTwice)
		}
	}
	return nil
}

func checkStaticString() error {
	if got := goString(get_string()); got != ffibridge.Greeting {
		return fmt.Errorf("get_string = %q", got)
	}
	process_string(get_string())
	process_string(nil)
	return nil
}
