package obj

import "github.com/milk9111/purplenight/fixed"

// ParticleKind selects the particle behaviour.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticleHealth
)

func (k ParticleKind) String() string {
	if k == ParticleHealth {
		return "heal orb"
	}
	return "dust"
}

const (
	dustTile   = 70
	healTile   = 88
	animFrames = 8 * 3

	dustLifetime = animFrames
	orbRiseTime  = animFrames * 3
	orbLifetime  = animFrames * 6
)

// Particle is a short-lived effect with no collision.
type Particle struct {
	entity Entity
	kind   ParticleKind
	frame  int
}

// NewParticle spawns kind at pos.
func NewParticle(sprites SpriteAllocator, kind ParticleKind, pos fixed.Vector, t *Tuning) Particle {
	e := NewEntity(sprites, fixed.Rect[int]{}, t.ProbeMargin)
	e.Position = pos
	tile := dustTile
	if kind == ParticleHealth {
		tile = healTile
	}
	e.sprite.SetTileID(tile * 4)
	e.sprite.Show()
	e.sprite.Commit()
	return Particle{entity: e, kind: kind}
}

func (pt *Particle) Entity() *Entity    { return &pt.entity }
func (pt *Particle) Kind() ParticleKind { return pt.kind }
func (pt *Particle) Frame() int         { return pt.frame }

// Update advances the particle. Dust plays once and is removed. A heal orb
// rises, then homes in on the player and heals on contact, expiring after
// six loops of its animation.
func (pt *Particle) Update(p *Player, t *Tuning) Instruction {
	e := &pt.entity
	switch pt.kind {
	case ParticleHealth:
		if pt.frame > orbLifetime {
			return Instruction{Kind: InstructionRemove}
		}
		e.sprite.SetTileID((healTile + (pt.frame/3)%8) * 4)

		if pt.frame < orbRiseTime {
			e.Velocity.Y = t.OrbRiseSpeed
		} else {
			target := p.Position().Sub(e.Position)
			if target.ManhattanDistance() < t.OrbHealDistance {
				return Instruction{Kind: InstructionHealPlayerAndRemove}
			}
			e.Velocity = fixed.Scale(fixed.Normalise(target), t.OrbHomeSpeed)
		}
		e.UpdatePositionWithoutCollision()
	default:
		if pt.frame == dustLifetime {
			return Instruction{Kind: InstructionRemove}
		}
		e.sprite.SetTileID((dustTile + pt.frame/3) * 4)
	}
	pt.frame++
	return Instruction{}
}

func (pt *Particle) Commit(offset fixed.Vector) { pt.entity.Commit(offset) }
