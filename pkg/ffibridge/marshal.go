package ffibridge

// SumArray adds values with int32 wrap-around; overflow is not reported.
func SumArray(values []int32) int32 {
	var sum int32
	for _, v := range values {
		sum += v
	}
	return sum
}

// ReverseBytes returns a new slice with the bytes of src in reverse order.
// Multi-byte UTF-8 sequences are reversed byte by byte, not as characters.
func ReverseBytes(src []byte) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		out[len(src)-1-i] = b
	}
	return out
}

// ReverseString is ReverseBytes for strings.
func ReverseString(s string) string {
	return string(ReverseBytes([]byte(s)))
}
