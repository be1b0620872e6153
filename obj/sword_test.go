package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
)

func TestSwordProgression(t *testing.T) {
	next, ok := LongSword.Downgrade()
	require.True(t, ok)
	require.Equal(t, ShortSword, next)

	_, ok = ShortSword.Downgrade()
	require.False(t, ok)

	next, ok = ShortSword.Upgrade()
	require.True(t, ok)
	require.Equal(t, LongSword, next)

	_, ok = LongSword.Upgrade()
	require.False(t, ok)
}

func TestSwordAnimationTables(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"long_attack_first", LongSword.SpriteID(0), 64},
		{"short_attack_last", ShortSword.SpriteID(7), 256},
		{"long_jump_attack", LongSword.JumpSpriteID(2), 104},
		{"long_jump_hold", LongSword.JumpSpriteID(13), 52},
		{"short_jump_hold", ShortSword.JumpSpriteID(54), 216},
		{"long_attack_frame_start", LongSword.AttackFrame(59), 0},
		{"long_attack_frame_end", LongSword.AttackFrame(0), 7},
		{"short_jump_frame_end", ShortSword.JumpAttackFrame(0), 3},
		{"long_fudge", LongSword.Fudge(4), 5},
		{"short_fudge", ShortSword.Fudge(1), 1},
		{"fudge_out_of_range", LongSword.Fudge(9), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.got)
		})
	}
}

func TestSwordIdleAndWalkWrap(t *testing.T) {
	counter := 31
	require.Equal(t, 3*4, LongSword.IdleAnimation(&counter))
	counter = 32
	require.Equal(t, 0, LongSword.IdleAnimation(&counter))
	require.Equal(t, 0, counter)

	counter = 24
	require.Equal(t, 45*4, ShortSword.WalkAnimation(&counter))
	require.Equal(t, 0, counter)
}

func TestSwordHurtboxes(t *testing.T) {
	_, ok := ShortSword.GroundAttackHurtbox(0)
	require.False(t, ok, "the short sword has no reach on its wind-up frame")

	box, ok := ShortSword.GroundAttackHurtbox(3)
	require.True(t, ok)
	require.Equal(t, fixed.R(8, 6, 8, 8), box)

	box, ok = LongSword.GroundAttackHurtbox(7)
	require.True(t, ok)
	require.Equal(t, fixed.R(6, 5, 10, 9), box)

	_, ok = LongSword.GroundAttackHurtbox(8)
	require.False(t, ok)

	box, ok = LongSword.AirAttackHurtbox(2)
	require.True(t, ok)
	require.Equal(t, fixed.R(0, 0, 16, 16), box)
}

func TestSwordForces(t *testing.T) {
	require.Equal(t, fixed.FromRaw(64), LongSword.GroundWalkForce())
	require.Equal(t, fixed.FromRaw(80), ShortSword.GroundWalkForce())
	require.Equal(t, fixed.FromInt(2), LongSword.JumpImpulse())
	require.Equal(t, fixed.FromRaw(4), LongSword.AirMoveForce())
	require.False(t, LongSword.CanAirAttack())
	require.True(t, ShortSword.CanAirAttack())
}
