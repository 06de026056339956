package ffibridge

import "runtime"

// Zeroize overwrites buf with zeros. runtime.KeepAlive keeps the stores from
// being eliminated as dead (golang/go#33325).
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
