package ecs

// Arena stores values in recycled slots addressed by generation-checked
// handles. Removing a value never invalidates the handles of other values.
type Arena[T any] struct {
	slots []slot[T]
	free  []slotID
	live  int
}

type slot[T any] struct {
	gen   generation
	alive bool
	value T
}

// NewArena creates an arena with room for capacity values before growing.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var id slotID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		id = slotID(len(a.slots))
	}
	s := &a.slots[id-1]
	s.alive = true
	s.value = v
	a.live++
	return makeHandle(id, s.gen)
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if a == nil || !h.Valid() || int(h.id()) > len(a.slots) {
		return nil
	}
	s := &a.slots[h.id()-1]
	if !s.alive || s.gen != h.generation() {
		return nil
	}
	return s
}

// Get returns a pointer to the value for h. The pointer is valid until the
// next Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	s := a.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.lookup(h) != nil
}

// Remove deletes the value for h and returns it. Stale or foreign handles
// are ignored and report false.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.alive = false
	s.gen++
	a.free = append(a.free, h.id())
	a.live--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.live
}

// Each calls fn for every live value in slot order. fn may remove values
// through deferred handles but must not insert into this arena.
func (a *Arena[T]) Each(fn func(h Handle, v *T)) {
	if a == nil {
		return
	}
	for i := range a.slots {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		fn(makeHandle(slotID(i+1), s.gen), &s.value)
	}
}

// Handles returns the handles of all live values in slot order.
func (a *Arena[T]) Handles() []Handle {
	if a == nil {
		return nil
	}
	out := make([]Handle, 0, a.live)
	a.Each(func(h Handle, _ *T) { out = append(out, h) })
	return out
}
