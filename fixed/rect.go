package fixed

// Rect is an axis-aligned rectangle. Size components are never negative.
type Rect[T Scalar] struct {
	Position Vec[T]
	Size     Vec[T]
}

// FixedRect is the fixed-point rectangle used for colliders and hurtboxes.
type FixedRect = Rect[Num]

// R builds a fixed-point rectangle from integer coordinates.
func R(x, y, w, h int) FixedRect {
	return FixedRect{Position: V(x, y), Size: V(w, h)}
}

// Touches reports whether the rectangles overlap, counting shared edges as
// contact.
func (r Rect[T]) Touches(o Rect[T]) bool {
	return r.Position.X <= o.Position.X+o.Size.X &&
		r.Position.X+r.Size.X >= o.Position.X &&
		r.Position.Y <= o.Position.Y+o.Size.Y &&
		r.Position.Y+r.Size.Y >= o.Position.Y
}

// Translate returns the rectangle moved by d.
func (r Rect[T]) Translate(d Vec[T]) Rect[T] {
	r.Position = r.Position.Add(d)
	return r
}

// Center returns the midpoint, truncated for integer rectangles.
func (r Rect[T]) Center() Vec[T] {
	return r.Position.Add(r.Size.DivInt(2))
}
