package obj

import "github.com/milk9111/purplenight/fixed"

// InstructionKind tells the game loop what to do after an actor updates.
type InstructionKind int

const (
	InstructionNone InstructionKind = iota
	// InstructionRemove deletes the actor once the current pass finishes.
	InstructionRemove
	// InstructionHealPlayerAndRemove heals the player, then behaves like
	// InstructionRemove.
	InstructionHealPlayerAndRemove
	// InstructionDamagePlayer applies one hit to the player.
	InstructionDamagePlayer
	// InstructionCreateParticle spawns Particle at Position.
	InstructionCreateParticle
)

func (k InstructionKind) String() string {
	switch k {
	case InstructionRemove:
		return "remove"
	case InstructionHealPlayerAndRemove:
		return "heal player and remove"
	case InstructionDamagePlayer:
		return "damage player"
	case InstructionCreateParticle:
		return "create particle"
	default:
		return "none"
	}
}

// Instruction is returned by every actor update. The zero value is None.
type Instruction struct {
	Kind     InstructionKind
	Particle ParticleKind
	Position fixed.Vector
}

func createParticle(kind ParticleKind, at fixed.Vector) Instruction {
	return Instruction{Kind: InstructionCreateParticle, Particle: kind, Position: at}
}
