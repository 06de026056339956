package ffibridge

// Version is populated at build time via
// -ldflags "-X github.com/ffibridge/ffibridge-go/pkg/ffibridge.Version=...".
var Version = "v0.0.0-in-progress"

// WrapperVersion returns Version.
func WrapperVersion() string {
	return Version
}
