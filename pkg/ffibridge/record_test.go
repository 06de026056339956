package ffibridge_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ffibridge/ffibridge-go/pkg/ffibridge"
)

func TestNewRecordKeepsFields(t *testing.T) {
	tests := []struct {
		name  string
		id    int32
		input string
		value float64
		want  string
	}{
		{name: "empty name", id: 0, input: "", value: 0, want: ""},
		{name: "short name", id: 7, input: "alpha", value: 1.5, want: "alpha"},
		{name: "negative id", id: math.MinInt32, input: "min", value: -2.25, want: "min"},
		{name: "exactly max", id: 1, input: strings.Repeat("a", ffibridge.MaxNameLen), value: 3, want: strings.Repeat("a", ffibridge.MaxNameLen)},
		{name: "one over max", id: 2, input: strings.Repeat("b", ffibridge.NameCapacity), value: 4, want: strings.Repeat("b", ffibridge.MaxNameLen)},
		{name: "far over max", id: math.MaxInt32, input: strings.Repeat("xyz", 100), value: math.Inf(1), want: strings.Repeat("xyz", 100)[:ffibridge.MaxNameLen]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ffibridge.NewRecord(tt.id, tt.input, tt.value)
			assert.Equal(t, tt.id, rec.ID)
			assert.Equal(t, tt.want, rec.Name)
			assert.Equal(t, tt.value, rec.Value)
			assert.LessOrEqual(t, len(rec.Name), ffibridge.MaxNameLen)
		})
	}
}

func TestTruncateNameIsPrefix(t *testing.T) {
	for n := 0; n < 200; n += 7 {
		in := strings.Repeat("q", n)
		got := ffibridge.TruncateName(in)
		if !strings.HasPrefix(in, got) {
			t.Fatalf("TruncateName(%d bytes) is not a prefix of the input", n)
		}
		want := n
		if want > ffibridge.MaxNameLen {
			want = ffibridge.MaxNameLen
		}
		if len(got) != want {
			t.Fatalf("TruncateName(%d bytes) length = %d, want %d", n, len(got), want)
		}
	}
}

func TestTruncateNameSplitsMultiByte(t *testing.T) {
	// 62 ASCII bytes followed by a 3-byte character: the cut lands inside it.
	in := strings.Repeat("a", 62) + "€"
	got := ffibridge.TruncateName(in)
	assert.Len(t, got, ffibridge.MaxNameLen)
	assert.Equal(t, in[:ffibridge.MaxNameLen], got)
}
