package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/purplenight/fixed"
	"github.com/milk9111/purplenight/obj"
)

var ErrBadFraction = errors.New("prefabs: malformed fraction")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

func decodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// TuningSpec mirrors tuning.yaml. Fixed-point values are written as
// integers or "a/b" fractions.
type TuningSpec struct {
	Name    string      `yaml:"name"`
	Physics PhysicsSpec `yaml:"physics"`
	Player  PlayerSpec  `yaml:"player"`
	Slime   SlimeSpec   `yaml:"slime"`
	Bat     BatSpec     `yaml:"bat"`
	HealOrb HealOrbSpec `yaml:"heal_orb"`
	Camera  CameraSpec  `yaml:"camera"`
}

type PhysicsSpec struct {
	Gravity       Fixed   `yaml:"gravity"`
	GroundDamping Damping `yaml:"ground_damping"`
	AirDamping    Damping `yaml:"air_damping"`
}

type PlayerSpec struct {
	Spawn            PointSpec `yaml:"spawn"`
	DamageCooldown   int       `yaml:"damage_cooldown"`
	HardLandingSpeed Fixed     `yaml:"hard_landing_speed"`
	WalkThreshold    Fixed     `yaml:"walk_threshold"`
	ProbeMargin      Fixed     `yaml:"probe_margin"`
}

type SlimeSpec struct {
	AggroDistance Fixed `yaml:"aggro_distance"`
	Speed         Fixed `yaml:"speed"`
}

type BatSpec struct {
	AggroDistance Fixed `yaml:"aggro_distance"`
	Speed         Fixed `yaml:"speed"`
	ChaseFrames   int   `yaml:"chase_frames"`
}

type HealOrbSpec struct {
	RiseSpeed    Fixed `yaml:"rise_speed"`
	HomeSpeed    Fixed `yaml:"home_speed"`
	HealDistance Fixed `yaml:"heal_distance"`
}

type CameraSpec struct {
	Follow         bool `yaml:"follow"`
	ShakeFrames    int  `yaml:"shake_frames"`
	ShakeMagnitude int  `yaml:"shake_magnitude"`
}

type PointSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadTuning reads tuning.yaml, honouring a disk override.
func LoadTuning() (obj.Tuning, error) {
	spec, err := LoadSpec[TuningSpec]("tuning.yaml")
	if err != nil {
		return obj.Tuning{}, err
	}
	return spec.Tuning(), nil
}

// Tuning converts the spec into the simulation's tuning values.
func (s TuningSpec) Tuning() obj.Tuning {
	return obj.Tuning{
		Gravity:       s.Physics.Gravity.Num,
		GroundDamping: obj.Damping(s.Physics.GroundDamping),
		AirDamping:    obj.Damping(s.Physics.AirDamping),

		PlayerSpawn:    fixed.V(s.Player.Spawn.X, s.Player.Spawn.Y),
		DamageCooldown: s.Player.DamageCooldown,
		HardLanding:    s.Player.HardLandingSpeed.Num,
		WalkThreshold:  s.Player.WalkThreshold.Num,
		ProbeMargin:    s.Player.ProbeMargin.Num,

		SlimeAggro: s.Slime.AggroDistance.Num,
		SlimeSpeed: s.Slime.Speed.Num,

		BatAggro:       s.Bat.AggroDistance.Num,
		BatSpeed:       s.Bat.Speed.Num,
		BatChaseFrames: s.Bat.ChaseFrames,

		OrbRiseSpeed:    s.HealOrb.RiseSpeed.Num,
		OrbHomeSpeed:    s.HealOrb.HomeSpeed.Num,
		OrbHealDistance: s.HealOrb.HealDistance.Num,

		ShakeFrames:    s.Camera.ShakeFrames,
		ShakeMagnitude: s.Camera.ShakeMagnitude,
		CameraFollow:   s.Camera.Follow,
	}
}

// Fixed is a fixed-point value written as "3" or "1/16".
type Fixed struct {
	fixed.Num
}

func (f *Fixed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: want a scalar", ErrBadFraction, value.Line)
	}
	n, err := fixed.Parse(value.Value)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrBadFraction, value.Line, err)
	}
	f.Num = n
	return nil
}

// Damping is a per-frame velocity scale written as "num/den". The ratio is
// kept unreduced so the multiply-then-divide order is preserved.
type Damping struct {
	Num int
	Den int
}

func (d *Damping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: want a scalar", ErrBadFraction, value.Line)
	}
	numStr, denStr, ok := strings.Cut(value.Value, "/")
	if !ok {
		return fmt.Errorf("%w: line %d: %q has no denominator", ErrBadFraction, value.Line, value.Value)
	}
	num, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrBadFraction, value.Line, err)
	}
	den, err := strconv.Atoi(strings.TrimSpace(denStr))
	if err != nil || den == 0 {
		return fmt.Errorf("%w: line %d: bad denominator %q", ErrBadFraction, value.Line, denStr)
	}
	d.Num, d.Den = num, den
	return nil
}

// PaletteSpec mirrors palette.yaml: the colours used to draw the built-in
// sprite sheet and tile set.
type PaletteSpec struct {
	Name   string             `yaml:"name"`
	Sky    YAMLColor          `yaml:"sky"`
	Tiles  map[int]YAMLColor  `yaml:"tiles"`
	Actors []ActorPaletteSpec `yaml:"actors"`
}

// ActorPaletteSpec colours the sprite frames First..Last inclusive.
type ActorPaletteSpec struct {
	Name   string    `yaml:"name"`
	First  int       `yaml:"first"`
	Last   int       `yaml:"last"`
	Body   YAMLColor `yaml:"body"`
	Accent YAMLColor `yaml:"accent"`
}

func LoadPalette() (PaletteSpec, error) {
	return LoadSpec[PaletteSpec]("palette.yaml")
}

// Actor returns the palette entry covering sprite frame, if any.
func (p PaletteSpec) Actor(frame int) (ActorPaletteSpec, bool) {
	for _, a := range p.Actors {
		if frame >= a.First && frame <= a.Last {
			return a, true
		}
	}
	return ActorPaletteSpec{}, false
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
