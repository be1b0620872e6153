package obj

import "math/rand/v2"

// Clip names a sound effect or music track.
type Clip string

const (
	ClipBatDeath      Clip = "BatDeath"
	ClipBatFlap       Clip = "BatFlap"
	ClipJump1         Clip = "Jump1"
	ClipJump2         Clip = "Jump2"
	ClipJump3         Clip = "Jump3"
	ClipPlayerGetsHit Clip = "PlayerGetsHit"
	ClipPlayerHeal    Clip = "PlayerHeal"
	ClipPlayerLands   Clip = "PlayerLands"
	ClipSlimeBoing    Clip = "SlimeBoing"
	ClipSlimeDeath    Clip = "SlimeDeath"
	ClipSwordSwing    Clip = "SwordSwing"

	ClipPurpleNight Clip = "PurpleNight"
)

// Clips lists every sound effect and track, in a stable order.
var Clips = []Clip{
	ClipBatDeath, ClipBatFlap, ClipJump1, ClipJump2, ClipJump3,
	ClipPlayerGetsHit, ClipPlayerHeal, ClipPlayerLands, ClipSlimeBoing,
	ClipSlimeDeath, ClipSwordSwing, ClipPurpleNight,
}

var jumpClips = [...]Clip{ClipJump1, ClipJump2, ClipJump3}

// Sfx is the gameplay-facing wrapper around the audio sink. A nil *Sfx or
// a nil sink is silent.
type Sfx struct {
	sink  AudioSink
	rng   *rand.Rand
	music bool
}

// NewSfx wraps sink. rng picks between clip variations.
func NewSfx(sink AudioSink, rng *rand.Rand) *Sfx {
	return &Sfx{sink: sink, rng: rng}
}

func (s *Sfx) play(c Clip) {
	if s == nil || s.sink == nil {
		return
	}
	s.sink.PlaySound(c)
}

// VBlank ticks the mixer once per frame.
func (s *Sfx) VBlank() {
	if s == nil || s.sink == nil {
		return
	}
	s.sink.VBlank()
}

// PurpleNight starts the background track, replacing any running one.
func (s *Sfx) PurpleNight() {
	if s == nil || s.sink == nil {
		return
	}
	if s.music {
		s.sink.StopMusic()
	}
	s.sink.PlayMusic(ClipPurpleNight)
	s.music = true
}

// StopMusic halts the background track if one is playing.
func (s *Sfx) StopMusic() {
	if s == nil || s.sink == nil || !s.music {
		return
	}
	s.sink.StopMusic()
	s.music = false
}

func (s *Sfx) Jump() {
	if s == nil {
		return
	}
	c := jumpClips[0]
	if s.rng != nil {
		c = jumpClips[s.rng.IntN(len(jumpClips))]
	}
	s.play(c)
}

func (s *Sfx) SwordSwing()  { s.play(ClipSwordSwing) }
func (s *Sfx) PlayerLands() { s.play(ClipPlayerLands) }
func (s *Sfx) PlayerHurt()  { s.play(ClipPlayerGetsHit) }
func (s *Sfx) PlayerHeal()  { s.play(ClipPlayerHeal) }
func (s *Sfx) SlimeBoing()  { s.play(ClipSlimeBoing) }
func (s *Sfx) SlimeDeath()  { s.play(ClipSlimeDeath) }
func (s *Sfx) BatFlap()     { s.play(ClipBatFlap) }
func (s *Sfx) BatDeath()    { s.play(ClipBatDeath) }
