package obj

import "github.com/milk9111/purplenight/fixed"

// Damping scales a velocity component by Num/Den each frame.
type Damping struct {
	Num int
	Den int
}

// Apply multiplies before dividing so 40/64 and 63/64 keep their precision.
func (d Damping) Apply(v fixed.Num) fixed.Num {
	if d.Den == 0 {
		return v
	}
	return v.MulInt(d.Num).DivInt(d.Den)
}

// Tuning holds the gameplay constants that prefabs/tuning.yaml can override.
type Tuning struct {
	Gravity       fixed.Num
	GroundDamping Damping
	AirDamping    Damping

	PlayerSpawn    fixed.Vector
	DamageCooldown int
	HardLanding    fixed.Num
	WalkThreshold  fixed.Num
	ProbeMargin    fixed.Num

	SlimeAggro fixed.Num
	SlimeSpeed fixed.Num

	BatAggro       fixed.Num
	BatSpeed       fixed.Num
	BatChaseFrames int

	OrbRiseSpeed    fixed.Num
	OrbHomeSpeed    fixed.Num
	OrbHealDistance fixed.Num

	ShakeFrames    int
	ShakeMagnitude int
	CameraFollow   bool
}

// DefaultTuning returns the values the embedded tuning.yaml ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       fixed.Ratio(1, 16),
		GroundDamping: Damping{Num: 40, Den: 64},
		AirDamping:    Damping{Num: 63, Den: 64},

		PlayerSpawn:    fixed.V(58, 26),
		DamageCooldown: 120,
		HardLanding:    fixed.FromInt(2),
		WalkThreshold:  fixed.Ratio(1, 10),
		ProbeMargin:    fixed.Ratio(1, 16),

		SlimeAggro: fixed.FromInt(40),
		SlimeSpeed: fixed.Ratio(1, 5),

		BatAggro:       fixed.FromInt(50),
		BatSpeed:       fixed.Ratio(1, 4),
		BatChaseFrames: 300,

		OrbRiseSpeed:    fixed.Ratio(-1, 2),
		OrbHomeSpeed:    fixed.FromInt(2),
		OrbHealDistance: fixed.FromInt(5),

		ShakeFrames:    20,
		ShakeMagnitude: 4,
		CameraFollow:   true,
	}
}
