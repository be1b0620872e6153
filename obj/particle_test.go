package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
)

func TestDustPlaysOnce(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(nil, &tu)
	sprites := &fakeSprites{}
	pt := NewParticle(sprites, ParticleDust, fixed.V(10, 10), &tu)
	require.Equal(t, dustTile*4, sprites.all[0].tile)

	for i := 0; i < dustLifetime; i++ {
		require.Equal(t, InstructionNone, pt.Update(p, &tu).Kind)
		require.Equal(t, (dustTile+i/3)*4, sprites.all[0].tile)
	}
	require.Equal(t, InstructionRemove, pt.Update(p, &tu).Kind)
	require.Equal(t, fixed.V(10, 10), pt.Entity().Position, "dust does not move")
}

func TestHealOrbRisesThenHomes(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(nil, &tu)
	start := p.Position().Add(fixed.V(60, 0))
	pt := NewParticle(nil, ParticleHealth, start, &tu)

	for i := 0; i < orbRiseTime; i++ {
		require.Equal(t, InstructionNone, pt.Update(p, &tu).Kind)
	}
	require.Equal(t, start.Add(fixed.V(0, -36)), pt.Entity().Position)

	before := p.Position().Sub(pt.Entity().Position).ManhattanDistance()
	pt.Update(p, &tu)
	after := p.Position().Sub(pt.Entity().Position).ManhattanDistance()
	require.Less(t, after, before)

	var instr Instruction
	for i := 0; i < orbLifetime && instr.Kind == InstructionNone; i++ {
		instr = pt.Update(p, &tu)
	}
	require.Equal(t, InstructionHealPlayerAndRemove, instr.Kind)
}

func TestHealOrbHealsImmediatelyWhenClose(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(nil, &tu)
	pt := NewParticle(nil, ParticleHealth, p.Position().Add(fixed.V(2, 0)), &tu)
	pt.frame = orbRiseTime

	require.Equal(t, InstructionHealPlayerAndRemove, pt.Update(p, &tu).Kind)
}

func TestHealOrbExpires(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(nil, &tu)
	pt := NewParticle(nil, ParticleHealth, p.Position(), &tu)
	pt.frame = orbLifetime + 1

	require.Equal(t, InstructionRemove, pt.Update(p, &tu).Kind)
}
