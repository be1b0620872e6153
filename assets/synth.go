package assets

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate of every synthesised clip and of the shared audio
// context.
const SampleRate = 44100

var (
	sampleRate = beep.SampleRate(SampleRate)
	pcmFormat  = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveTriangle
	// waveNoise holds a random level for one period of the sweep frequency.
	waveNoise
)

// tone is one note of a clip: an oscillator gliding from one frequency to
// another under a linear decay.
type tone struct {
	from, to float64
	dur      time.Duration
	wave     wave
	gain     float64
}

// sweep streams a single tone.
type sweep struct {
	tone
	n, pos int
	phase  float64
	held   float64
	rng    *rand.Rand
}

func newSweep(t tone, rng *rand.Rand) *sweep {
	return &sweep{tone: t, n: sampleRate.N(t.dur), rng: rng}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.n {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.n {
			return i, true
		}
		progress := float64(s.pos) / float64(s.n)
		freq := s.from + (s.to-s.from)*progress

		var v float64
		switch s.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case waveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 1 - 4*math.Abs(s.phase-0.5)
		case waveNoise:
			v = s.held
		}

		// Short attack avoids a click at note start.
		env := 1 - progress
		if attack := sampleRate.N(2 * time.Millisecond); s.pos < attack {
			env *= float64(s.pos) / float64(attack)
		}
		v *= env

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(sampleRate)
		if s.phase >= 1 {
			s.phase -= math.Floor(s.phase)
			if s.wave == waveNoise {
				s.held = s.rng.Float64()*2 - 1
			}
		}
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// phrase plays tones back to back.
func phrase(rng *rand.Rand, tones ...tone) (beep.Streamer, int) {
	streams := make([]beep.Streamer, 0, len(tones))
	total := 0
	for _, t := range tones {
		sw := newSweep(t, rng)
		total += sw.n
		streams = append(streams, newVolume(sw, t.gain))
	}
	return beep.Seq(streams...), total
}

// render drains s into signed 16-bit little-endian stereo PCM.
func render(s beep.Streamer, limit int) []byte {
	s = beep.Take(limit, s)
	out := make([]byte, 0, limit*pcmFormat.Width())
	buf := make([][2]float64, 512)
	frame := make([]byte, pcmFormat.Width())
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			smp[0] = math.Max(-1, math.Min(1, smp[0]))
			smp[1] = math.Max(-1, math.Min(1, smp[1]))
			pcmFormat.EncodeSigned(frame, smp)
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}
