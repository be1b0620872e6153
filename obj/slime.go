package obj

import (
	"github.com/milk9111/purplenight/common"
)

const (
	slimeFirstTile = 29
	slimeHopTile   = 31
	slimeDeathTile = 36

	slimeHopFrames   = 6
	slimeDeathFrames = 5 * 4
)

// SlimeStateKind is the slime's state.
type SlimeStateKind int

const (
	SlimeIdle SlimeStateKind = iota
	SlimeChasing
	SlimeDead
)

// SlimeState carries the hop direction while chasing and the death
// animation counter while dead.
type SlimeState struct {
	Kind      SlimeStateKind
	Direction Tri
	Counter   int
}

// Slime hops toward the player in short bursts once the player comes near.
type Slime struct {
	spriteOffset int
	state        SlimeState
}

func (s *Slime) State() SlimeState { return s.state }

func (s *Slime) alive() bool { return s.state.Kind != SlimeDead }

func (s *Slime) stateName() string {
	switch s.state.Kind {
	case SlimeChasing:
		return "chasing"
	case SlimeDead:
		return "dead"
	default:
		return "idle"
	}
}

func (s *Slime) update(e *Entity, p *Player, level Collider, t *Tuning, sfx *Sfx) Instruction {
	instr := Instruction{}
	shouldDie := p.Hits(e.Collider())
	shouldDamage := e.Collider().Touches(p.Collider())

	switch s.state.Kind {
	case SlimeIdle:
		s.spriteOffset++
		if s.spriteOffset >= 32 {
			s.spriteOffset = 0
		}
		e.sprite.SetTileID((slimeFirstTile + s.spriteOffset/16) * 4)

		if p.Position().Sub(e.Position).ManhattanDistance() < t.SlimeAggro {
			s.state = SlimeState{Kind: SlimeChasing, Direction: triOf(p.Position().X - e.Position.X)}
			s.spriteOffset = 0
			sfx.SlimeBoing()
		}

	case SlimeChasing:
		s.spriteOffset++
		if s.spriteOffset >= 7*slimeHopFrames {
			s.state = SlimeState{Kind: SlimeIdle}
			break
		}

		frame := common.PingPong(s.spriteOffset/slimeHopFrames, 5)
		e.sprite.SetTileID((frame + slimeHopTile) * 4)

		switch frame {
		case 2, 3, 4:
			e.Velocity.X = t.SlimeSpeed.MulInt(int(s.state.Direction))
		default:
			e.Velocity.X = 0
		}
		e.Velocity.Y += t.Gravity

		// Falling off a ledge skips to the landing frames.
		if moved := e.UpdatePosition(level); moved.Y > 0 && s.spriteOffset > 2*slimeHopFrames {
			s.spriteOffset = 6 * slimeHopFrames
		}

	case SlimeDead:
		if s.state.Counter < slimeDeathFrames {
			e.sprite.SetTileID((slimeDeathTile + s.state.Counter/4) * 4)
			s.state.Counter++
			return instr
		}
		return Instruction{Kind: InstructionRemove}
	}

	if shouldDie {
		s.state = SlimeState{Kind: SlimeDead}
		sfx.SlimeDeath()
	} else if shouldDamage {
		instr.Kind = InstructionDamagePlayer
	}
	return instr
}
