// Package arena implements the handle table behind the opaque object handles
// handed across the C boundary.
//
// A Handle never carries a memory address. It packs a slot index and the
// generation of that slot, so a handle that outlives its value is reported as
// stale instead of resolving to whatever occupies the slot next:
//
//	bits 0-31   slot index + 1 (0 means the null handle)
//	bits 32-63  slot generation
//
// The table is guarded by a single mutex. Values stored in it are not: callers
// that share one value between threads synchronise access themselves.
package arena
