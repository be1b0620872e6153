package obj

import "github.com/milk9111/purplenight/fixed"

// Tri is a three-way direction: negative, zero or positive.
type Tri int

const (
	TriNegative Tri = -1
	TriZero     Tri = 0
	TriPositive Tri = 1
)

func triOf(n fixed.Num) Tri {
	return Tri(n.Signum())
}

// Button names the two action buttons.
type Button int

const (
	// ButtonA jumps.
	ButtonA Button = iota
	// ButtonB swings the sword.
	ButtonB
)

// Input is the per-frame input snapshot.
type Input interface {
	// XTri reports the horizontal direction being held.
	XTri() Tri
	// IsJustPressed reports whether b went down this frame.
	IsJustPressed(b Button) bool
}

// Sprite is one hardware-style sprite slot owned by an entity. Setters are
// staged and flushed by Commit.
type Sprite interface {
	SetPosition(p fixed.Point)
	SetTileID(id int)
	SetHFlip(flip bool)
	Show()
	Hide()
	Commit()
	// Release returns the slot to the allocator. The sprite must not be used
	// afterwards.
	Release()
}

// SpriteAllocator hands out sprites for newly created entities.
type SpriteAllocator interface {
	NewSprite() Sprite
}

// Background is a scrollable tile layer.
type Background interface {
	SetPosition(p fixed.Point)
	Commit()
}

// AudioSink plays sound effects and a single looping music track.
type AudioSink interface {
	PlaySound(clip Clip)
	PlayMusic(clip Clip)
	StopMusic()
	// VBlank advances the mixer by one frame.
	VBlank()
}

type nopSprite struct{}

func (nopSprite) SetPosition(fixed.Point) {}
func (nopSprite) SetTileID(int)           {}
func (nopSprite) SetHFlip(bool)           {}
func (nopSprite) Show()                   {}
func (nopSprite) Hide()                   {}
func (nopSprite) Commit()                 {}
func (nopSprite) Release()                {}

type nopBackground struct{}

func (nopBackground) SetPosition(fixed.Point) {}
func (nopBackground) Commit()                 {}

func newSprite(sprites SpriteAllocator) Sprite {
	if sprites == nil {
		return nopSprite{}
	}
	if s := sprites.NewSprite(); s != nil {
		return s
	}
	return nopSprite{}
}
