package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/purplenight/assets"
	"github.com/milk9111/purplenight/obj"
)

// audioSink plays synthesised clips through ebiten. Sounds requested during
// a frame start on the next VBlank.
type audioSink struct {
	logger  *log.Logger
	muted   bool
	players map[obj.Clip]*audio.Player
	pending []obj.Clip
	music   *audio.Player
	failed  map[obj.Clip]bool
}

func newAudioSink(logger *log.Logger, muted bool) *audioSink {
	return &audioSink{
		logger:  logger,
		muted:   muted,
		players: make(map[obj.Clip]*audio.Player),
		failed:  make(map[obj.Clip]bool),
	}
}

func (a *audioSink) PlaySound(clip obj.Clip) {
	if a.muted {
		return
	}
	a.pending = append(a.pending, clip)
}

func (a *audioSink) PlayMusic(clip obj.Clip) {
	if a.muted {
		return
	}
	a.StopMusic()
	p, err := assets.NewMusicPlayer(clip)
	if err != nil {
		a.warn(clip, err)
		return
	}
	p.SetVolume(0.5)
	p.Play()
	a.music = p
}

func (a *audioSink) StopMusic() {
	if a.music == nil {
		return
	}
	a.music.Pause()
	_ = a.music.Close()
	a.music = nil
}

func (a *audioSink) VBlank() {
	for _, clip := range a.pending {
		p, ok := a.players[clip]
		if !ok {
			var err error
			p, err = assets.NewClipPlayer(clip)
			if err != nil {
				a.warn(clip, err)
				continue
			}
			a.players[clip] = p
		}
		if err := p.Rewind(); err != nil {
			a.warn(clip, err)
			continue
		}
		p.Play()
	}
	a.pending = a.pending[:0]
}

// warn logs a clip failure once.
func (a *audioSink) warn(clip obj.Clip, err error) {
	if a.failed[clip] {
		return
	}
	a.failed[clip] = true
	a.logger.Warn("audio clip unavailable", "clip", clip, "err", err)
}
