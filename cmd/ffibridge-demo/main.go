// Command ffibridge-demo walks through the ownership rules of ffibridge using
// the Go API, without loading the shared library.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge"
	"github.com/ffibridge/ffibridge-go/pkg/ffibridge/logging"
)

func main() {
	verbose := flag.Bool("v", false, "log library diagnostics at debug level")
	flag.Parse()

	if err := execute(*verbose); err != nil {
		log.Fatal(err)
	}
}

// execute owns the logger and library so their cleanup runs before main exits.
func execute(verbose bool) (err error) {
	zl := zap.NewNop()
	if verbose {
		if zl, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
	}
	defer func() { _ = zl.Sync() }()
	logger := logging.NewZap(zl)

	log.Printf("ffibridge version: %s", ffibridge.WrapperVersion())

	lib, err := ffibridge.Open(ffibridge.Config{Logger: logger, MaxHandles: 16})
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close: %w", cerr))
		}
	}()

	return run(context.Background(), lib)
}

func run(ctx context.Context, lib *ffibridge.Library) (err error) {
	rec := ffibridge.NewRecord(1, strings.Repeat("x", 80), 2.5)
	fmt.Printf("record: id=%d name=%d bytes value=%g\n", rec.ID, len(rec.Name), rec.Value)

	obj, err := lib.NewObject()
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("release object: %w", cerr))
		}
	}()

	if err := obj.Set(42); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	v, err := obj.Get()
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	fmt.Printf("object value: %d (live objects: %d)\n", v, lib.Live())

	ffibridge.RegisterCallback(ffibridge.CallbackFunc(func(status int32) {
		fmt.Printf("callback status: %d\n", status)
	}))

	fmt.Printf("sum: %d\n", ffibridge.SumArray([]int32{1, 2, 3}))
	fmt.Printf("reverse: %s\n", ffibridge.ReverseString("ffibridge"))

	lib.Logger().Debug(ctx, "demo finished", "live", lib.Live())
	return nil
}
