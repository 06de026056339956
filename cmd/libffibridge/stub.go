//go:build !cgo

package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.Error("libffibridge requires cgo; rebuild with CGO_ENABLED=1 and -buildmode=c-shared")
	os.Exit(1)
}
