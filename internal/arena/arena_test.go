package arena

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Basic(t *testing.T) {
	tbl := New[string](0)

	h, err := tbl.Insert("test value")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	v, err := tbl.Get(h)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "test value" {
		t.Fatalf("Expected 'test value', got %q", v)
	}

	v, err = tbl.Remove(h)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if v != "test value" {
		t.Fatalf("Expected 'test value', got %q", v)
	}

	if _, err := tbl.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("Expected ErrStaleHandle after Remove, got %v", err)
	}
}

func TestTable_NullHandle(t *testing.T) {
	tbl := New[int](0)

	_, err := tbl.Get(0)
	assert.ErrorIs(t, err, ErrNullHandle)

	_, err = tbl.Remove(0)
	assert.ErrorIs(t, err, ErrNullHandle)
}

func TestTable_UnknownHandle(t *testing.T) {
	tbl := New[int](0)

	_, err := tbl.Get(makeHandle(41, 1))
	assert.ErrorIs(t, err, ErrUnknown)

	// Generation bits without an index never resolve.
	_, err = tbl.Get(Handle(uint64(1) << 32))
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestTable_SlotReuseBumpsGeneration(t *testing.T) {
	tbl := New[int](0)

	first, err := tbl.Insert(1)
	require.NoError(t, err)
	_, err = tbl.Remove(first)
	require.NoError(t, err)

	second, err := tbl.Insert(2)
	require.NoError(t, err)

	assert.Equal(t, first.Index(), second.Index(), "slot should be recycled")
	assert.NotEqual(t, first, second)
	assert.Equal(t, first.Generation()+1, second.Generation())

	_, err = tbl.Get(first)
	assert.ErrorIs(t, err, ErrStaleHandle)

	v, err := tbl.Get(second)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestTable_DoubleRemove(t *testing.T) {
	tbl := New[int](0)

	h, err := tbl.Insert(7)
	require.NoError(t, err)
	_, err = tbl.Remove(h)
	require.NoError(t, err)

	_, err = tbl.Remove(h)
	assert.ErrorIs(t, err, ErrStaleHandle)
	assert.Equal(t, 0, tbl.Len())
}

func TestTable_Limit(t *testing.T) {
	tbl := New[int](2)

	a, err := tbl.Insert(1)
	require.NoError(t, err)
	_, err = tbl.Insert(2)
	require.NoError(t, err)

	_, err = tbl.Insert(3)
	assert.ErrorIs(t, err, ErrFull)

	_, err = tbl.Remove(a)
	require.NoError(t, err)

	_, err = tbl.Insert(3)
	assert.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_Close(t *testing.T) {
	tbl := New[int](0)

	for i := 0; i < 3; i++ {
		_, err := tbl.Insert(i)
		require.NoError(t, err)
	}
	h, err := tbl.Insert(99)
	require.NoError(t, err)
	_, err = tbl.Remove(h)
	require.NoError(t, err)

	var seen []int
	require.NoError(t, tbl.Close(func(v int) { seen = append(seen, v) }))
	assert.ElementsMatch(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 0, tbl.Len())

	_, err = tbl.Insert(5)
	assert.ErrorIs(t, err, ErrClosed)

	_, err = tbl.Get(h)
	assert.ErrorIs(t, err, ErrClosed)

	// second close reports the closed state and visits nothing
	err = tbl.Close(func(int) { t.Fatal("unexpected callback after close") })
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTable_ConcurrentDistinctHandles(t *testing.T) {
	tbl := New[*int](0)

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := w*perWorker + i
				h, err := tbl.Insert(&v)
				if err != nil {
					errs <- err
					return
				}
				got, err := tbl.Get(h)
				if err != nil {
					errs <- err
					return
				}
				if *got != v {
					errs <- errors.New("value mismatch")
					return
				}
				if _, err := tbl.Remove(h); err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("worker failed: %v", err)
	}
	assert.Equal(t, 0, tbl.Len())
}
