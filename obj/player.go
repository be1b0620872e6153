package obj

import (
	"github.com/milk9111/purplenight/fixed"
)

// PlayerState is the locomotion half of the player state machine.
type PlayerState int

const (
	OnGround PlayerState = iota
	InAir
)

func (s PlayerState) String() string {
	if s == InAir {
		return "in air"
	}
	return "on ground"
}

// AttackState is the sword half of the player state machine. It runs
// orthogonally to PlayerState.
type AttackState int

const (
	AttackIdle AttackState = iota
	Attacking
	AttackCooldown
)

func (s AttackState) String() string {
	switch s {
	case Attacking:
		return "attacking"
	case AttackCooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// AttackTimer counts down the frames left in Attacking or AttackCooldown.
type AttackTimer struct {
	State  AttackState
	Frames int
}

// Player is the sword-wielding protagonist.
type Player struct {
	entity         Entity
	tuning         *Tuning
	facing         Tri
	state          PlayerState
	spriteOffset   int
	attack         AttackTimer
	damageCooldown int
	sword          Sword
	fudge          fixed.Point
	hurtbox        fixed.FixedRect
	hasHurtbox     bool
}

// NewPlayer spawns the player at the tuned spawn point holding the long
// sword.
func NewPlayer(sprites SpriteAllocator, t *Tuning) *Player {
	e := NewEntity(sprites, fixed.Rect[int]{Size: fixed.P(4, 12)}, t.ProbeMargin)
	e.sprite.SetTileID(0)
	e.sprite.Show()
	e.Position = t.PlayerSpawn
	e.sprite.Commit()

	return &Player{
		entity: e,
		tuning: t,
		facing: TriPositive,
		state:  OnGround,
		sword:  LongSword,
	}
}

func (p *Player) Entity() *Entity           { return &p.entity }
func (p *Player) Position() fixed.Vector    { return p.entity.Position }
func (p *Player) Collider() fixed.FixedRect { return p.entity.Collider() }
func (p *Player) State() PlayerState        { return p.state }
func (p *Player) Attack() AttackTimer       { return p.attack }
func (p *Player) Sword() Sword              { return p.sword }
func (p *Player) Facing() Tri               { return p.facing }
func (p *Player) DamageCooldown() int       { return p.damageCooldown }

// Hurtbox is the world-space sword hitbox for this frame, if the current
// attack frame has one.
func (p *Player) Hurtbox() (fixed.FixedRect, bool) {
	return p.hurtbox, p.hasHurtbox
}

// Hits reports whether the sword hitbox overlaps r.
func (p *Player) Hits(r fixed.FixedRect) bool {
	return p.hasHurtbox && p.hurtbox.Touches(r)
}

// Update advances the player one frame. It returns CreateParticle for the
// landing dust after a hard fall and None otherwise.
func (p *Player) Update(in Input, level Collider, sfx *Sfx) Instruction {
	instr := Instruction{}
	t := p.tuning
	e := &p.entity
	x := in.XTri()

	p.fudge = fixed.Point{}
	var hurtbox fixed.FixedRect
	hasHurtbox := false

	switch p.state {
	case OnGround:
		e.Velocity.Y = 0
		e.Velocity.X = t.GroundDamping.Apply(e.Velocity.X)

		switch p.attack.State {
		case AttackIdle:
			p.face(x)
			e.Velocity.X += p.sword.GroundWalkForce().MulInt(int(x))
			if e.Velocity.X.Abs() > t.WalkThreshold {
				e.sprite.SetTileID(p.sword.WalkAnimation(&p.spriteOffset))
			} else {
				e.sprite.SetTileID(p.sword.IdleAnimation(&p.spriteOffset))
			}

			if in.IsJustPressed(ButtonB) {
				p.attack = AttackTimer{State: Attacking, Frames: p.sword.AttackDuration()}
				sfx.SwordSwing()
			} else if in.IsJustPressed(ButtonA) {
				e.Velocity.Y -= p.sword.JumpImpulse()
				p.state = InAir
				p.spriteOffset = 0
				sfx.Jump()
			}
		case Attacking:
			p.attack.Frames--
			frame := p.sword.AttackFrame(p.attack.Frames)
			p.fudge.X = p.sword.Fudge(frame) * int(p.facing)
			e.sprite.SetTileID(p.sword.SpriteID(frame))
			hurtbox, hasHurtbox = p.sword.GroundAttackHurtbox(frame)
			if p.attack.Frames == 0 {
				p.attack = AttackTimer{State: AttackCooldown, Frames: p.sword.CooldownTime()}
			}
		case AttackCooldown:
			p.attack.Frames--
			frame := p.sword.HoldFrame()
			p.fudge.X = p.sword.Fudge(frame) * int(p.facing)
			e.sprite.SetTileID(p.sword.SpriteID(frame))
			if p.attack.Frames == 0 {
				p.attack = AttackTimer{}
			}
		}

	case InAir:
		e.Velocity.X = t.AirDamping.Apply(e.Velocity.X)

		switch p.attack.State {
		case AttackIdle:
			e.sprite.SetTileID((p.airFrame() + p.sword.JumpOffset()) * 4)
			p.face(x)
			e.Velocity.X += p.sword.AirMoveForce().MulInt(int(x))

			if in.IsJustPressed(ButtonB) && p.sword.CanAirAttack() {
				p.attack = AttackTimer{State: Attacking, Frames: p.sword.JumpAttackDuration()}
				sfx.SwordSwing()
			}
		case Attacking:
			p.attack.Frames--
			frame := p.sword.JumpAttackFrame(p.attack.Frames)
			e.sprite.SetTileID(p.sword.JumpSpriteID(frame))
			hurtbox, hasHurtbox = p.sword.AirAttackHurtbox(frame)
			if p.attack.Frames == 0 {
				p.attack = AttackTimer{}
			}
		case AttackCooldown:
			p.attack = AttackTimer{}
		}
	}

	e.Velocity.Y += t.Gravity

	p.hasHurtbox = hasHurtbox
	if hasHurtbox {
		b := fixed.FixedRect{Position: hurtbox.Position.Sub(fixed.V(8, 8)), Size: hurtbox.Size}
		if p.facing == TriNegative {
			b.Position.X = -b.Position.X - b.Size.X
		}
		p.hurtbox = b.Translate(e.Position.Add(fixed.FromPoint(p.fudge)))
	} else {
		p.hurtbox = fixed.FixedRect{}
	}

	priorVY := e.Velocity.Y
	e.UpdatePosition(level)
	if _, grounded := e.CollisionInDirection(fixed.V(0, 1), fixed.FromInt(1), level); grounded {
		if p.state == InAir && priorVY > t.HardLanding {
			instr = createParticle(ParticleDust, e.Position.Add(fixed.V(2*int(p.facing), 0)))
			sfx.PlayerLands()
		}
		p.state = OnGround
	} else {
		p.state = InAir
	}

	if p.damageCooldown > 0 {
		p.damageCooldown--
	}
	p.spriteOffset++

	return instr
}

func (p *Player) face(x Tri) {
	if x != TriZero {
		p.facing = x
	}
	p.entity.sprite.SetHFlip(p.facing == TriNegative)
}

// airFrame picks the jump animation frame: the takeoff plays through, then
// the frame follows vertical velocity.
func (p *Player) airFrame() int {
	vy := p.entity.Velocity.Y
	switch {
	case p.spriteOffset < 3*4:
		return p.spriteOffset / 4
	case vy.Abs() < fixed.Ratio(1, 5):
		return 3
	case vy > fixed.FromInt(1):
		return 5
	case vy > 0:
		return 4
	default:
		return 2
	}
}

// Damage applies a hit. A hit during the invulnerability window is ignored
// and reports damaged=false. alive is false when the weakest sword was hit.
func (p *Player) Damage() (alive, damaged bool) {
	if p.damageCooldown != 0 {
		return true, false
	}
	p.damageCooldown = p.tuning.DamageCooldown
	next, ok := p.sword.Downgrade()
	if !ok {
		return false, true
	}
	p.sword = next
	return true, true
}

// Heal upgrades the sword and starts the invulnerability window.
func (p *Player) Heal() {
	if next, ok := p.sword.Upgrade(); ok {
		p.sword = next
	}
	p.damageCooldown = p.tuning.DamageCooldown
}

// Commit stages the player sprite, including the attack fudge.
func (p *Player) Commit(offset fixed.Vector) {
	p.entity.CommitWithFudge(offset, p.fudge)
}
