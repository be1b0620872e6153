package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
)

func TestSlimeStaysIdleOutOfRange(t *testing.T) {
	p, m, _ := newGroundedPlayer(t)
	en := NewEnemy(nil, EnemySlime, fixed.V(200, 34), p.tuning)

	for i := 0; i < 10; i++ {
		require.Equal(t, InstructionNone, en.Update(p, m, p.tuning, nil).Kind)
	}
	s, ok := en.Slime()
	require.True(t, ok)
	require.Equal(t, SlimeIdle, s.State().Kind)
	require.Equal(t, fixed.V(200, 34), en.Entity().Position, "idle slimes do not move")
}

func TestSlimeAggroDirection(t *testing.T) {
	cases := []struct {
		name  string
		slime fixed.Vector
		want  Tri
	}{
		{"player_left", fixed.V(40, 34), TriNegative},
		{"player_right", fixed.V(5, 34), TriPositive},
		{"same_column", fixed.V(20, 0), TriZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, m, _ := newGroundedPlayer(t)
			audio := &fakeAudio{}
			en := NewEnemy(nil, EnemySlime, c.slime, p.tuning)

			en.Update(p, m, p.tuning, NewSfx(audio, nil))

			s, _ := en.Slime()
			require.Equal(t, SlimeState{Kind: SlimeChasing, Direction: c.want}, s.State())
			require.Equal(t, 1, audio.played(ClipSlimeBoing))
		})
	}
}

func TestSlimeChaseReturnsToIdle(t *testing.T) {
	p, m, _ := newGroundedPlayer(t)
	en := NewEnemy(nil, EnemySlime, fixed.V(50, 34), p.tuning)
	en.Update(p, m, p.tuning, nil)
	s, _ := en.Slime()
	require.Equal(t, SlimeChasing, s.State().Kind)

	start := en.Entity().Position.X
	for i := 0; i < 7*slimeHopFrames; i++ {
		en.Update(p, m, p.tuning, nil)
	}
	require.Less(t, en.Entity().Position.X, start, "slime hops toward the player")

	require.Equal(t, SlimeIdle, s.State().Kind)
}

func TestSlimeDamagesOnContactAndDiesToSword(t *testing.T) {
	p, m, _ := newGroundedPlayer(t)
	en := NewEnemy(nil, EnemySlime, p.Position(), p.tuning)
	require.Equal(t, InstructionDamagePlayer, en.Update(p, m, p.tuning, nil).Kind)

	p.hurtbox = en.Entity().Collider()
	p.hasHurtbox = true
	require.Equal(t, InstructionNone, en.Update(p, m, p.tuning, nil).Kind, "a killing blow does not also hurt")
	require.False(t, en.Alive())

	for i := 0; i < slimeDeathFrames; i++ {
		require.Equal(t, InstructionNone, en.Update(p, m, p.tuning, nil).Kind)
	}
	require.Equal(t, InstructionRemove, en.Update(p, m, p.tuning, nil).Kind)
}

func TestBatChasesThenGivesUp(t *testing.T) {
	tu := groundedTuning()
	tu.BatChaseFrames = 3
	p := NewPlayer(nil, &tu)
	m := NewTileMap(floorLevel(t))
	en := NewEnemy(nil, EnemyBat, fixed.V(50, 20), &tu)

	en.Update(p, m, &tu, nil)
	b, ok := en.Bat()
	require.True(t, ok)
	require.Equal(t, BatState{Kind: BatChasing, Frames: 3}, b.State())

	before := en.Entity().Position.Sub(p.Position()).ManhattanDistance()
	for i := 0; i < 3; i++ {
		en.Update(p, m, &tu, nil)
	}
	after := en.Entity().Position.Sub(p.Position()).ManhattanDistance()
	require.Less(t, after, before)
	require.Equal(t, BatState{Kind: BatChasing, Frames: 0}, b.State())

	en.Update(p, m, &tu, nil)
	require.Equal(t, BatIdle, b.State().Kind)
}

func TestDeadBatDropsHealOrbOnLanding(t *testing.T) {
	tu := DefaultTuning()
	p := NewPlayer(nil, &tu)
	m := NewTileMap(floorLevel(t))
	en := NewEnemy(nil, EnemyBat, fixed.V(100, 30), &tu)
	b, _ := en.Bat()
	b.state = BatState{Kind: BatDead}
	require.False(t, en.Alive())

	var drop Instruction
	for i := 0; i < 100 && drop.Kind == InstructionNone; i++ {
		drop = en.Update(p, m, &tu, nil)
	}
	require.Equal(t, InstructionCreateParticle, drop.Kind)
	require.Equal(t, ParticleHealth, drop.Particle)
	require.Equal(t, en.Entity().Position, drop.Position)

	box := en.Entity().Collider()
	require.Equal(t, fixed.FromInt(40), box.Position.Y+box.Size.Y, "resting on the floor")

	for i := 0; i < 10; i++ {
		require.Equal(t, InstructionNone, en.Update(p, m, &tu, nil).Kind, "only one orb per landing")
	}
}
