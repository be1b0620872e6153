package obj

import "github.com/milk9111/purplenight/fixed"

// Sword is the player's health: taking a hit downgrades the sword, taking a
// hit with the weakest sword is death.
type Sword int

const (
	LongSword Sword = iota
	ShortSword
)

func (s Sword) String() string {
	switch s {
	case LongSword:
		return "long"
	case ShortSword:
		return "short"
	default:
		return "unknown"
	}
}

// Downgrade returns the next weaker sword, or false if s is the weakest.
func (s Sword) Downgrade() (Sword, bool) {
	if s == LongSword {
		return ShortSword, true
	}
	return s, false
}

// Upgrade returns the next stronger sword, or false if s is the strongest.
func (s Sword) Upgrade() (Sword, bool) {
	if s == ShortSword {
		return LongSword, true
	}
	return s, false
}

// swordStats is everything that varies between swords. Animation values are
// frame indices into the 16x16 sprite sheet.
type swordStats struct {
	walkForce      fixed.Num
	jumpImpulse    fixed.Num
	airMoveForce   fixed.Num
	idleBase       int
	walkBase       int
	jumpOffset     int
	attackBase     int
	jumpAttackBase int
	attackFrames   int
	jumpFrames     int
	holdFrame      int
	jumpHoldFrame  int
	cooldown       int
	canAirAttack   bool
	fudge          [8]int
	hurtboxes      [8]hurtboxFrame
}

type hurtboxFrame struct {
	rect fixed.FixedRect
	ok   bool
}

func hb(x, y, w, h int) hurtboxFrame {
	return hurtboxFrame{rect: fixed.R(x, y, w, h), ok: true}
}

var swords = [...]swordStats{
	LongSword: {
		walkForce:      fixed.Ratio(4, 16),
		jumpImpulse:    fixed.Ratio(32, 16),
		airMoveForce:   fixed.Ratio(4, 256),
		idleBase:       0,
		walkBase:       4,
		jumpOffset:     10,
		attackBase:     16,
		jumpAttackBase: 24,
		attackFrames:   60,
		jumpFrames:     34,
		holdFrame:      7,
		jumpHoldFrame:  13,
		cooldown:       20,
		fudge:          [8]int{0, 0, 1, 4, 5, 5, 5, 4},
		hurtboxes: [8]hurtboxFrame{
			hb(1, 10, 6, 3),
			hb(0, 9, 7, 2),
			hb(0, 1, 6, 8),
			hb(3, 0, 6, 8),
			hb(6, 3, 10, 8),
			hb(6, 5, 10, 9),
			hb(6, 5, 10, 9),
			hb(6, 5, 10, 9),
		},
	},
	ShortSword: {
		walkForce:      fixed.Ratio(5, 16),
		jumpImpulse:    fixed.Ratio(35, 16),
		airMoveForce:   fixed.Ratio(5, 256),
		idleBase:       41,
		walkBase:       45,
		jumpOffset:     51,
		attackBase:     57,
		jumpAttackBase: 65,
		attackFrames:   40,
		jumpFrames:     28,
		holdFrame:      7,
		jumpHoldFrame:  54,
		cooldown:       10,
		canAirAttack:   true,
		fudge:          [8]int{0, 1, 2, 3, 3, 3, 3, 3},
		hurtboxes: [8]hurtboxFrame{
			{},
			hb(10, 5, 3, 5),
			hb(8, 5, 6, 6),
			hb(8, 6, 8, 8),
			hb(8, 7, 5, 7),
			hb(8, 7, 7, 7),
			hb(8, 5, 7, 8),
			hb(8, 4, 4, 7),
		},
	},
}

func (s Sword) stats() *swordStats { return &swords[s] }

func (s Sword) GroundWalkForce() fixed.Num { return s.stats().walkForce }
func (s Sword) JumpImpulse() fixed.Num     { return s.stats().jumpImpulse }
func (s Sword) AirMoveForce() fixed.Num    { return s.stats().airMoveForce }
func (s Sword) JumpOffset() int            { return s.stats().jumpOffset }
func (s Sword) AttackDuration() int        { return s.stats().attackFrames }
func (s Sword) JumpAttackDuration() int    { return s.stats().jumpFrames }
func (s Sword) HoldFrame() int             { return s.stats().holdFrame }
func (s Sword) JumpAttackHoldFrame() int   { return s.stats().jumpHoldFrame }
func (s Sword) CooldownTime() int          { return s.stats().cooldown }

// CanAirAttack reports whether the sword can be swung mid-jump.
func (s Sword) CanAirAttack() bool { return s.stats().canAirAttack }

// IdleAnimation returns the idle tile for counter, wrapping it every
// 32 frames.
func (s Sword) IdleAnimation(counter *int) int {
	if *counter >= 4*8 {
		*counter = 0
	}
	return (s.stats().idleBase + *counter/8) * 4
}

// WalkAnimation returns the walk tile for counter, wrapping it every
// 24 frames.
func (s Sword) WalkAnimation(counter *int) int {
	if *counter >= 6*4 {
		*counter = 0
	}
	return (s.stats().walkBase + *counter/4) * 4
}

func (s Sword) AttackFrame(timer int) int {
	return (s.AttackDuration() - timer) / 8
}

func (s Sword) JumpAttackFrame(timer int) int {
	return (s.JumpAttackDuration() - timer) / 8
}

func (s Sword) SpriteID(frame int) int {
	return (s.stats().attackBase + frame) * 4
}

func (s Sword) JumpSpriteID(frame int) int {
	if frame == s.JumpAttackHoldFrame() {
		return frame * 4
	}
	return (s.stats().jumpAttackBase + frame) * 4
}

// Fudge is the horizontal sprite nudge for an attack frame, before mirroring.
func (s Sword) Fudge(frame int) int {
	f := &s.stats().fudge
	if frame < 0 || frame >= len(f) {
		return 0
	}
	return f[frame]
}

// GroundAttackHurtbox is the sword's hitbox for frame in sprite-local
// coordinates, origin at the sprite's top left, facing right.
func (s Sword) GroundAttackHurtbox(frame int) (fixed.FixedRect, bool) {
	h := &s.stats().hurtboxes
	if frame < 0 || frame >= len(h) {
		return fixed.FixedRect{}, false
	}
	return h[frame].rect, h[frame].ok
}

// AirAttackHurtbox covers the whole sprite for every frame.
func (s Sword) AirAttackHurtbox(int) (fixed.FixedRect, bool) {
	return fixed.R(0, 0, 16, 16), true
}
