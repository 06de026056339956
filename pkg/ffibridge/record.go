package ffibridge

const (
	// NameCapacity is the size of the fixed name buffer of a plain record,
	// terminator included.
	NameCapacity = 64

	// MaxNameLen is the number of name bytes a plain record keeps.
	MaxNameLen = NameCapacity - 1
)

// Greeting is the static text returned by get_string. It is owned by the
// library and must never be freed by the caller.
const Greeting = "Hello from ffibridge"

// Record is the Go view of a plain data record.
type Record struct {
	ID    int32
	Name  string
	Value float64
}

// NewRecord builds a Record, clipping name to MaxNameLen bytes.
func NewRecord(id int32, name string, value float64) Record {
	return Record{ID: id, Name: TruncateName(name), Value: value}
}

// TruncateName returns the first MaxNameLen bytes of name. Oversized names are
// clipped, never rejected. The cut is byte-based and may split a multi-byte
// character, the same way a fixed C buffer would.
func TruncateName(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}
	return name
}

// Point is a geometric value record.
type Point struct {
	X float64
	Y float64
}
