package obj

// Buttons implements Input from held state sampled once per frame. Edge
// detection compares against the previous sample.
type Buttons struct {
	x    Tri
	held [2]bool
	prev [2]bool
}

// Update records this frame's sample. a and b are whether the jump and
// attack buttons are held.
func (b *Buttons) Update(x Tri, a, bHeld bool) {
	b.prev = b.held
	b.held = [2]bool{ButtonA: a, ButtonB: bHeld}
	b.x = x
}

func (b *Buttons) XTri() Tri { return b.x }

func (b *Buttons) IsPressed(btn Button) bool {
	return btn >= 0 && int(btn) < len(b.held) && b.held[btn]
}

func (b *Buttons) IsJustPressed(btn Button) bool {
	return b.IsPressed(btn) && !b.prev[btn]
}
