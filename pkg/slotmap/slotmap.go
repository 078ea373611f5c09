package slotmap

import (
	"fmt"
	"iter"
)

// Key identifies one entry of a Map. Keys are only issued by Insert; the
// zero Key never matches an entry. A key is never reissued for another
// entry.
type Key struct {
	index      uint32
	generation uint32
}

// IsZero reports whether k is the zero Key
func (k Key) IsZero() bool {
	return k.generation == 0
}

func (k Key) String() string {
	return fmt.Sprintf("%d#%d", k.index, k.generation)
}

// slot links are stored as index+1 so that 0 means "no link" and the zero
// Map is ready to use.
type slot[T any] struct {
	value      T
	generation uint32
	live       bool
	prev       uint32
	next       uint32
}

// Map is an arena of values addressed by generational keys. Traversal
// follows insertion order even when freed slots are reused.
//
// Map is not safe for concurrent use.
type Map[T any] struct {
	slots []slot[T]
	free  []uint32
	head  uint32
	tail  uint32
	count int
}

// New creates an empty Map
func New[T any]() *Map[T] {
	return &Map[T]{}
}

// Insert appends v at the end of the traversal order and returns its key
func (m *Map[T]) Insert(v T) Key {
	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		idx = uint32(len(m.slots))
		m.slots = append(m.slots, slot[T]{generation: 1})
	}

	s := &m.slots[idx]
	s.value = v
	s.live = true
	s.prev = m.tail
	s.next = 0
	if m.tail != 0 {
		m.slots[m.tail-1].next = idx + 1
	} else {
		m.head = idx + 1
	}
	m.tail = idx + 1
	m.count++

	return Key{index: idx, generation: s.generation}
}

func (m *Map[T]) lookup(k Key) *slot[T] {
	if k.IsZero() || int(k.index) >= len(m.slots) {
		return nil
	}
	s := &m.slots[k.index]
	if !s.live || s.generation != k.generation {
		return nil
	}
	return s
}

// Get returns the value stored under k
func (m *Map[T]) Get(k Key) (T, bool) {
	if s := m.lookup(k); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether k still refers to a live entry
func (m *Map[T]) Contains(k Key) bool {
	return m.lookup(k) != nil
}

// Remove deletes the entry stored under k and returns its value. Stale keys,
// keys from another Map and the zero Key are ignored. Other keys stay valid.
func (m *Map[T]) Remove(k Key) (T, bool) {
	var zero T
	s := m.lookup(k)
	if s == nil {
		return zero, false
	}

	if s.prev != 0 {
		m.slots[s.prev-1].next = s.next
	} else {
		m.head = s.next
	}
	if s.next != 0 {
		m.slots[s.next-1].prev = s.prev
	} else {
		m.tail = s.prev
	}

	v := s.value
	s.value = zero
	s.live = false
	s.prev, s.next = 0, 0
	// A slot whose generation would wrap is retired rather than reused, so
	// no old key can alias a later entry. Generation 0 never matches a key.
	s.generation++
	if s.generation != 0 {
		m.free = append(m.free, k.index)
	}
	m.count--

	return v, true
}

// Len returns the number of live entries
func (m *Map[T]) Len() int {
	return m.count
}

// Keys returns the live keys in insertion order
func (m *Map[T]) Keys() []Key {
	keys := make([]Key, 0, m.count)
	for link := m.head; link != 0; link = m.slots[link-1].next {
		keys = append(keys, Key{index: link - 1, generation: m.slots[link-1].generation})
	}
	return keys
}

// All iterates over the live entries in insertion order. The entry being
// visited may be removed from the loop body; any other mutation ends the
// iteration's guarantees.
func (m *Map[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for link := m.head; link != 0; {
			s := &m.slots[link-1]
			next := s.next
			if !yield(Key{index: link - 1, generation: s.generation}, s.value) {
				return
			}
			link = next
		}
	}
}

// Clear removes every entry. All previously issued keys become stale.
func (m *Map[T]) Clear() {
	for _, k := range m.Keys() {
		m.Remove(k)
	}
}
