package ecs

import "strconv"

// Handle identifies a value stored in an Arena. It packs a slot id and the
// slot generation so a handle to a removed value never resolves to the value
// that later reuses its slot.
type Handle uint64

type slotID uint32
type generation uint32

const slotIDBits = 32

func makeHandle(id slotID, gen generation) Handle {
	return Handle(uint64(gen)<<slotIDBits | uint64(id))
}

func (h Handle) id() slotID {
	return slotID(uint32(h))
}

func (h Handle) generation() generation {
	return generation(uint32(uint64(h) >> slotIDBits))
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h.id()), 10) + "." + strconv.FormatUint(uint64(h.generation()), 10)
}

// Valid reports whether the handle was produced by an Arena. It says nothing
// about whether the value is still alive.
func (h Handle) Valid() bool {
	return h.id() > 0
}
