package arena

import (
	"errors"
	"sync"
)

var (
	// ErrNullHandle is returned for the zero Handle.
	ErrNullHandle = errors.New("arena: null handle")
	// ErrStaleHandle is returned for a handle whose entry was removed.
	ErrStaleHandle = errors.New("arena: stale handle")
	// ErrUnknown is returned for a handle naming a slot the table never had.
	ErrUnknown = errors.New("arena: handle out of range")
	// ErrFull is returned by Insert when the limit is reached.
	ErrFull = errors.New("arena: handle limit reached")
	// ErrClosed is returned by every operation after Close, including Close.
	ErrClosed = errors.New("arena: table closed")
)

// Handle identifies a live entry of a Table. The zero Handle is never issued.
type Handle uint64

// Index returns the slot index encoded in h.
func (h Handle) Index() uint32 {
	return uint32(h) - 1
}

// Generation returns the slot generation encoded in h.
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

func makeHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index+1))
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Table maps handles to values of type T.
type Table[T any] struct {
	mu       sync.Mutex
	slots    []slot[T]
	freeList []uint32
	live     int
	limit    int
	closed   bool
}

// New returns an empty table. A limit of zero means unbounded.
func New[T any](limit int) *Table[T] {
	return &Table[T]{
		slots:    make([]slot[T], 0, 16),
		freeList: make([]uint32, 0, 16),
		limit:    limit,
	}
}

// Insert stores v and returns its handle.
func (t *Table[T]) Insert(v T) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}
	if t.limit > 0 && t.live >= t.limit {
		return 0, ErrFull
	}

	t.live++
	if n := len(t.freeList); n > 0 {
		idx := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		s := &t.slots[idx]
		s.value = v
		s.live = true
		return makeHandle(idx, s.generation), nil
	}

	t.slots = append(t.slots, slot[T]{value: v, generation: 1, live: true})
	return makeHandle(uint32(len(t.slots)-1), 1), nil
}

// Get returns the value stored under h.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Remove deletes the entry for h and returns its value. The slot is recycled
// under a new generation, so h stays invalid from then on.
func (t *Table[T]) Remove(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	s, err := t.lookup(h)
	if err != nil {
		return zero, err
	}

	v := s.value
	s.value = zero
	s.live = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	t.live--
	t.freeList = append(t.freeList, h.Index())
	return v, nil
}

// Len reports the number of live entries.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// Close drops every entry. fn, if non-nil, is called for each live value.
// Closing twice returns ErrClosed.
func (t *Table[T]) Close(fn func(T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.closed = true

	for i := range t.slots {
		if t.slots[i].live && fn != nil {
			fn(t.slots[i].value)
		}
	}
	t.slots = nil
	t.freeList = nil
	t.live = 0
	return nil
}

func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	if t.closed {
		return nil, ErrClosed
	}
	if h == 0 {
		return nil, ErrNullHandle
	}
	idx := h.Index()
	if uint64(idx) >= uint64(len(t.slots)) {
		return nil, ErrUnknown
	}
	s := &t.slots[idx]
	if !s.live || s.generation != h.Generation() {
		return nil, ErrStaleHandle
	}
	return s, nil
}
