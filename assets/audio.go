package assets

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/purplenight/obj"
)

var ErrUnknownClip = errors.New("assets: unknown clip")

const ms = time.Millisecond

var effectTones = map[obj.Clip][]tone{
	obj.ClipJump1: {{300, 620, 90 * ms, waveSquare, 0.18}},
	obj.ClipJump2: {{340, 700, 90 * ms, waveSquare, 0.18}},
	obj.ClipJump3: {{280, 560, 110 * ms, waveSquare, 0.18}},
	obj.ClipSwordSwing: {
		{4000, 900, 120 * ms, waveNoise, 0.3},
	},
	obj.ClipPlayerLands: {{160, 60, 80 * ms, waveTriangle, 0.5}},
	obj.ClipPlayerGetsHit: {
		{420, 140, 140 * ms, waveSquare, 0.25},
		{2000, 600, 90 * ms, waveNoise, 0.2},
	},
	obj.ClipPlayerHeal: {
		{523, 523, 70 * ms, waveSine, 0.4},
		{659, 659, 70 * ms, waveSine, 0.4},
		{784, 784, 140 * ms, waveSine, 0.4},
	},
	obj.ClipSlimeBoing: {{180, 440, 150 * ms, waveSine, 0.5}},
	obj.ClipSlimeDeath: {{440, 90, 260 * ms, waveTriangle, 0.45}},
	obj.ClipBatFlap: {
		{1800, 900, 50 * ms, waveNoise, 0.2},
		{1800, 900, 50 * ms, waveNoise, 0.2},
	},
	obj.ClipBatDeath: {{760, 140, 220 * ms, waveSquare, 0.2}},
}

// purpleNight is the looping track: an A minor progression as eighth-note
// arpeggios over a held bass note.
var purpleNight = struct {
	chords [][3]float64
	bass   []float64
	note   time.Duration
}{
	chords: [][3]float64{
		{440.00, 523.25, 659.25},
		{349.23, 440.00, 523.25},
		{261.63, 329.63, 392.00},
		{392.00, 493.88, 587.33},
	},
	bass: []float64{110.00, 87.31, 65.41, 98.00},
	note: 250 * ms,
}

var (
	clipMu    sync.Mutex
	clipCache = make(map[obj.Clip][]byte)

	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide ebiten audio context.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		if c := audio.CurrentContext(); c != nil {
			audioContext = c
			return
		}
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// ClipPCM returns clip as signed 16-bit little-endian stereo PCM at
// SampleRate. Results are cached and must not be modified.
func ClipPCM(clip obj.Clip) ([]byte, error) {
	clipMu.Lock()
	defer clipMu.Unlock()

	if pcm, ok := clipCache[clip]; ok {
		return pcm, nil
	}
	s, n, err := clipStreamer(clip)
	if err != nil {
		return nil, err
	}
	pcm := render(s, n)
	clipCache[clip] = pcm
	return pcm, nil
}

func clipStreamer(clip obj.Clip) (beep.Streamer, int, error) {
	// Noise is seeded per clip so every build sounds the same.
	rng := rand.New(rand.NewPCG(uint64(len(clip)), 0x5eed))
	if clip == obj.ClipPurpleNight {
		s, n := musicStreamer(rng)
		return s, n, nil
	}
	tones, ok := effectTones[clip]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
	}
	s, n := phrase(rng, tones...)
	return s, n, nil
}

func musicStreamer(rng *rand.Rand) (beep.Streamer, int) {
	pattern := [...]int{0, 1, 2, 1, 0, 1, 2, 1}
	var melody, bass []tone
	for i, chord := range purpleNight.chords {
		for _, p := range pattern {
			melody = append(melody, tone{chord[p], chord[p], purpleNight.note, waveTriangle, 0.22})
		}
		hold := purpleNight.note * time.Duration(len(pattern))
		bass = append(bass, tone{purpleNight.bass[i], purpleNight.bass[i], hold, waveSine, 0.3})
	}
	top, n := phrase(rng, melody...)
	low, _ := phrase(rng, bass...)
	return beep.Mix(top, low), n
}

// NewClipPlayer returns a one-shot player for a sound effect.
func NewClipPlayer(clip obj.Clip) (*audio.Player, error) {
	pcm, err := ClipPCM(clip)
	if err != nil {
		return nil, err
	}
	return AudioContext().NewPlayerFromBytes(pcm), nil
}

// NewMusicPlayer returns a player that loops clip until paused.
func NewMusicPlayer(clip obj.Clip) (*audio.Player, error) {
	pcm, err := ClipPCM(clip)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := AudioContext().NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: music player %q: %w", clip, err)
	}
	return p, nil
}
