package ffibridge

// StatusOK is the status passed to every callback handed to RegisterCallback.
const StatusOK int32 = 200

// Callback is a caller-supplied function taking one status code.
type Callback interface {
	Invoke(status int32)
}

// CallbackFunc adapts an ordinary function to Callback.
type CallbackFunc func(status int32)

// Invoke calls f(status).
func (f CallbackFunc) Invoke(status int32) {
	f(status)
}

// RegisterCallback invokes cb exactly once, synchronously, with StatusOK.
// Despite the name nothing is retained: cb is not called again after
// RegisterCallback returns. A nil cb is ignored.
func RegisterCallback(cb Callback) {
	if cb == nil {
		return
	}
	cb.Invoke(StatusOK)
}
