package obj

import "github.com/milk9111/purplenight/fixed"

const (
	batFirstTile = 78
	batDeadTile  = 87
)

// BatStateKind is the bat's state.
type BatStateKind int

const (
	BatIdle BatStateKind = iota
	BatChasing
	BatDead
)

// BatState carries the remaining chase frames while chasing.
type BatState struct {
	Kind   BatStateKind
	Frames int
}

// Bat flies straight at the player for a while once the player comes near.
// A dead bat drops to the floor and leaves a heal orb where it lands.
type Bat struct {
	spriteOffset int
	state        BatState
}

func (b *Bat) State() BatState { return b.state }

func (b *Bat) alive() bool { return b.state.Kind != BatDead }

func (b *Bat) stateName() string {
	switch b.state.Kind {
	case BatChasing:
		return "chasing"
	case BatDead:
		return "dead"
	default:
		return "idle"
	}
}

func (b *Bat) update(e *Entity, p *Player, level Collider, t *Tuning, sfx *Sfx) Instruction {
	instr := Instruction{}
	shouldDie := p.Hits(e.Collider())
	shouldDamage := e.Collider().Touches(p.Collider())

	switch b.state.Kind {
	case BatIdle:
		b.spriteOffset++
		if b.spriteOffset >= 9*8 {
			b.spriteOffset = 0
		}
		e.sprite.SetTileID((batFirstTile + b.spriteOffset/8) * 4)

		if e.Position.Sub(p.Position()).ManhattanDistance() < t.BatAggro {
			b.state = BatState{Kind: BatChasing, Frames: t.BatChaseFrames}
			b.spriteOffset /= 4
			sfx.BatFlap()
		}

	case BatChasing:
		b.spriteOffset++
		e.Velocity = fixed.Scale(fixed.Normalise(p.Position().Sub(e.Position)), t.BatSpeed)

		if b.spriteOffset >= 9*2 {
			b.spriteOffset = 0
		}
		e.sprite.SetTileID((batFirstTile + b.spriteOffset/2) * 4)

		e.UpdatePosition(level)

		if b.state.Frames == 0 {
			b.state = BatState{Kind: BatIdle}
			b.spriteOffset *= 4
		} else {
			b.state.Frames--
		}

	case BatDead:
		e.sprite.SetTileID(batDeadTile * 4)
		e.Velocity.X = 0
		e.Velocity.Y += t.Gravity

		vy := e.Velocity.Y
		moved := e.UpdatePosition(level)
		if moved.Y != 0 && vy != moved.Y {
			return createParticle(ParticleHealth, e.Position)
		}
		return instr
	}

	if shouldDie {
		b.state = BatState{Kind: BatDead}
		sfx.BatDeath()
	} else if shouldDamage {
		instr.Kind = InstructionDamagePlayer
	}
	return instr
}
