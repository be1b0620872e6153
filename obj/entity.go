package obj

import (
	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/fixed"
)

// Entity is the positioned, collidable body shared by the player, enemies and
// particles. The mask is centred on Position, offset by Mask.Position.
type Entity struct {
	sprite   Sprite
	mask     fixed.Rect[int]
	margin   fixed.Num
	Position fixed.Vector
	Velocity fixed.Vector
	Visible  bool
}

// NewEntity allocates a sprite and returns a visible entity at the origin.
// margin insets the two collision probes from the mask corners.
func NewEntity(sprites SpriteAllocator, mask fixed.Rect[int], margin fixed.Num) Entity {
	return Entity{
		sprite:  newSprite(sprites),
		mask:    mask,
		margin:  margin,
		Visible: true,
	}
}

func (e *Entity) Sprite() Sprite { return e.sprite }

// Collider is the world-space collision rectangle.
func (e *Entity) Collider() fixed.FixedRect {
	r := fixed.R(e.mask.Position.X, e.mask.Position.Y, e.mask.Size.X, e.mask.Size.Y)
	r.Position = e.Position.Add(r.Position).Sub(r.Size.DivInt(2))
	return r
}

// CollisionInDirection sweeps the leading edge of the collider distance units
// along the unit vector direction. It returns the allowed displacement and
// whether either probe hit something. On a hit the displacement stops the
// edge flush against the near face of the tile.
func (e *Entity) CollisionInDirection(direction fixed.Vector, distance fixed.Num, c Collider) (fixed.Vector, bool) {
	box := e.Collider()
	half := box.Size.DivInt(2)

	leading := box.Position.Add(half).Add(fixed.Hadamard(box.Size, direction).DivInt(2))

	across := direction.Swap()
	inset := fixed.Scale(across, e.margin)
	spread := fixed.Hadamard(box.Size, across).DivInt(2)
	probes := [2]fixed.Vector{
		leading.Add(spread).Sub(inset),
		leading.Sub(spread).Add(inset),
	}

	want := fixed.Scale(direction, distance)
	axis := fixed.Vector{X: direction.X.Abs(), Y: direction.Y.Abs()}
	got := want
	collided := false
	for _, p := range probes {
		tile, ok := c.Collides(p.Add(want))
		if !ok {
			continue
		}
		face := tile.Center().Sub(fixed.Hadamard(tile.Size, direction).DivInt(2))
		stop := fixed.Hadamard(face.Sub(leading), axis)
		if got.ManhattanDistance() > stop.ManhattanDistance() {
			got = stop
		}
		collided = true
	}
	return got, collided
}

// UpdatePosition moves by Velocity, vertical axis first. A blocked axis has
// its velocity zeroed. It returns the displacement actually applied.
func (e *Entity) UpdatePosition(c Collider) fixed.Vector {
	start := e.Position

	if y := e.Velocity.Y.Signum(); y != 0 {
		delta, hit := e.CollisionInDirection(fixed.V(0, y), e.Velocity.Y.Abs(), c)
		e.Position = e.Position.Add(delta)
		if hit {
			e.Velocity.Y = 0
		}
	}
	if x := e.Velocity.X.Signum(); x != 0 {
		delta, hit := e.CollisionInDirection(fixed.V(x, 0), e.Velocity.X.Abs(), c)
		e.Position = e.Position.Add(delta)
		if hit {
			e.Velocity.X = 0
		}
	}

	return e.Position.Sub(start)
}

// UpdatePositionWithoutCollision applies Velocity unconditionally.
func (e *Entity) UpdatePositionWithoutCollision() fixed.Vector {
	e.Position = e.Position.Add(e.Velocity)
	return e.Velocity
}

// Commit stages the sprite at the camera-relative position.
func (e *Entity) Commit(offset fixed.Vector) {
	e.CommitWithFudge(offset, fixed.Point{})
}

// CommitWithFudge is Commit with an extra integer pixel offset. Sprites more
// than half a sprite outside the screen are hidden.
func (e *Entity) CommitWithFudge(offset fixed.Vector, fudge fixed.Point) {
	if !e.Visible {
		e.sprite.Hide()
		e.sprite.Commit()
		return
	}
	pos := fixed.Floor(e.Position.Sub(offset)).Add(fudge)
	e.sprite.SetPosition(pos.Sub(fixed.P(common.SpriteHalf, common.SpriteHalf)))
	if pos.X < -common.SpriteHalf || pos.X > common.ScreenWidth+common.SpriteHalf ||
		pos.Y < -common.SpriteHalf || pos.Y > common.ScreenHeight+common.SpriteHalf {
		e.sprite.Hide()
	} else {
		e.sprite.Show()
	}
	e.sprite.Commit()
}

func (e *Entity) release() {
	e.sprite.Hide()
	e.sprite.Commit()
	e.sprite.Release()
}
