package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
)

func TestCameraFollowClamps(t *testing.T) {
	cases := []struct {
		name   string
		target fixed.Vector
		want   fixed.Vector
	}{
		{"centre", fixed.V(300, 150), fixed.V(180, 70)},
		{"top_left", fixed.V(10, 10), fixed.V(0, 0)},
		{"bottom_right", fixed.V(470, 310), fixed.V(240, 160)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(240, 160, 4, true)
			cam.SetWorldBounds(480, 320)
			cam.Follow(c.target)
			require.Equal(t, c.want, cam.Offset())
		})
	}
}

func TestCameraFollowSmallWorld(t *testing.T) {
	cam := NewCamera(240, 160, 4, true)
	cam.SetWorldBounds(100, 100)
	cam.Follow(fixed.V(90, 90))
	require.Equal(t, fixed.Vector{}, cam.Offset())
}

func TestCameraFollowDisabled(t *testing.T) {
	cam := NewCamera(240, 160, 4, false)
	cam.SetWorldBounds(480, 320)
	cam.Follow(fixed.V(300, 150))
	require.Equal(t, fixed.Vector{}, cam.Offset())
}

func TestCameraShake(t *testing.T) {
	cam := NewCamera(240, 160, 4, false)
	cam.SetOffset(fixed.V(10, 10))
	require.Equal(t, fixed.V(10, 10), cam.FrameOffset(nil), "no shake, no jitter")

	cam.Shake(20)
	cam.Shake(20)
	require.Equal(t, 40, cam.ShakeTime())

	seq := []int32{-1000, 999, 512, -7, 0, 1 << 30}
	i := 0
	random := func() int32 {
		v := seq[i%len(seq)]
		i++
		return v
	}
	for n := 0; n < 40; n++ {
		o := cam.FrameOffset(random).Sub(fixed.V(10, 10))
		for _, c := range []fixed.Num{o.X, o.Y} {
			require.Greater(t, c, -fixed.FromInt(6))
			require.Less(t, c, fixed.FromInt(2))
		}
	}
	require.Zero(t, cam.ShakeTime())
	require.Equal(t, fixed.V(10, 10), cam.FrameOffset(random))
}

func TestCameraShakeTailUsesSmallerJitter(t *testing.T) {
	cam := NewCamera(240, 160, 4, false)
	cam.Shake(1)
	o := cam.FrameOffset(func() int32 { return 300 })
	// size 1: 300 % 256 = 44, minus half of 1.0
	require.Equal(t, fixed.Vector{X: fixed.FromRaw(-84), Y: fixed.FromRaw(-84)}, o)
}
