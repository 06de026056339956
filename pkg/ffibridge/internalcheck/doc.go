// Package internalcheck holds repository policy tests.
//
// They load the module with golang.org/x/tools/go/packages and fail when code
// outside the boundary package starts using cgo or unsafe. The package has no
// API.
package internalcheck
