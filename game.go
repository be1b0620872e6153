package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/purplenight/assets"
	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/levels"
	"github.com/milk9111/purplenight/obj"
	"github.com/milk9111/purplenight/prefabs"
	"github.com/milk9111/purplenight/records"
)

type runConfig struct {
	level  string
	seed   uint64
	dbPath string
	watch  bool
	mute   bool
	debug  bool
}

// Game adapts the simulation to ebiten: it samples input, draws the
// committed sprites and layers, and records each finished run.
type Game struct {
	cfg     runConfig
	logger  *log.Logger
	store   *records.Store
	watcher *prefabs.Watcher

	level   *levels.Level
	tuning  obj.Tuning
	atlas   *assets.Atlas
	specMod map[string]time.Time

	sprites    *spritePool
	clouds     *tileLayer
	background *tileLayer
	foreground *tileLayer
	audio      *audioSink
	input      obj.Buttons

	sim    *obj.Game
	seed   uint64
	result *ebitenui.UI
	quit   bool
}

func NewGame(cfg runConfig, logger *log.Logger) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(cfg.level)
	if err != nil {
		return nil, err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	palette, err := prefabs.LoadPalette()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		logger:     logger,
		level:      lvl,
		tuning:     tuning,
		atlas:      assets.NewAtlas(palette),
		specMod:    make(map[string]time.Time),
		sprites:    &spritePool{},
		background: newTileLayer(lvl.Background, lvl.Width, lvl.Height),
		foreground: newTileLayer(lvl.Foreground, lvl.Width, lvl.Height),
		audio:      newAudioSink(logger, cfg.mute),
	}
	if lvl.Clouds != nil {
		g.clouds = newTileLayer(lvl.Clouds, lvl.Width, lvl.Height)
	}

	if cfg.dbPath != "" {
		store, err := records.Open(cfg.dbPath)
		if err != nil {
			logger.Warn("run history disabled", "err", err)
		} else {
			g.store = store
		}
	}
	if cfg.watch {
		g.startWatcher()
	}

	if err := g.start(cfg.seed); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) startWatcher() {
	if _, err := os.Stat("prefabs"); err != nil {
		g.logger.Warn("nothing to watch, ./prefabs not found")
		return
	}
	w, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		g.logger.Warn("prefab hot reload disabled", "err", err)
		return
	}
	g.watcher = w
	g.logger.Info("watching prefabs for changes")
}

// start begins a fresh run of the current level.
func (g *Game) start(seed uint64) error {
	g.sprites.Reset()
	g.audio.StopMusic()

	layers := obj.Layers{Background: g.background, Foreground: g.foreground}
	if g.clouds != nil {
		layers.Clouds = g.clouds
	}
	sim, err := obj.NewGame(g.level, g.sprites, layers, g.audio, seed,
		obj.WithLogger(g.logger), obj.WithTuning(g.tuning))
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	g.sim = sim
	g.seed = seed
	g.result = nil
	g.input = obj.Buttons{}
	return nil
}

func (g *Game) retry() {
	if err := g.start(g.seed + 1); err != nil {
		g.logger.Error("retry failed", "err", err)
		g.quit = true
	}
}

// finish stores the run and raises the result panel.
func (g *Game) finish(status obj.Status) {
	stats := g.sim.Stats()
	var summary records.Summary
	if g.store != nil {
		id, err := g.store.SaveRun(records.Run{
			Seed:         g.seed,
			Level:        g.level.Name,
			Outcome:      status.String(),
			Frames:       stats.Frames,
			SlimesKilled: stats.SlimesKilled,
			BatsKilled:   stats.BatsKilled,
			DamageTaken:  stats.DamageTaken,
			Heals:        stats.Heals,
		})
		if err != nil {
			g.logger.Warn("run not saved", "err", err)
		} else {
			g.logger.Debug("run saved", "id", id)
		}
		if summary, err = g.store.Summarize(g.level.Name); err != nil {
			g.logger.Warn("run summary unavailable", "err", err)
		}
	}
	g.result = NewResultUI(g, status, stats, summary)
}

func (g *Game) drainWatcher() {
	for g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadSpec(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

// specChanged reports whether the on-disk prefab differs in modification
// time from the last one applied. Editors often emit several events per save.
func (g *Game) specChanged(name string) bool {
	mt, ok := prefabs.ModTime(name)
	if !ok {
		return true
	}
	if last, seen := g.specMod[name]; seen && last.Equal(mt) {
		return false
	}
	g.specMod[name] = mt
	return true
}

// reloadSpec applies an edited prefab. Tuning changes take effect on the
// next run so a run in progress stays deterministic.
func (g *Game) reloadSpec(path string) {
	name := filepath.Base(path)
	if !g.specChanged(name) {
		g.logger.Debug("prefab unchanged, skipping reload", "file", name)
		return
	}
	switch name {
	case "tuning.yaml":
		t, err := prefabs.LoadTuning()
		if err != nil {
			g.logger.Warn("tuning reload failed", "err", err)
			return
		}
		g.tuning = t
		g.logger.Info("tuning reloaded, applies next run")
	case "palette.yaml":
		p, err := prefabs.LoadPalette()
		if err != nil {
			g.logger.Warn("palette reload failed", "err", err)
			return
		}
		g.atlas = assets.NewAtlas(p)
		g.logger.Info("palette reloaded")
	}
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	g.drainWatcher()

	if g.result != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.retry()
			return nil
		}
		g.result.Update()
		return nil
	}

	pollInput(&g.input)
	if status := g.sim.AdvanceFrame(&g.input); status != obj.StatusContinue {
		g.finish(status)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.atlas.Sky())
	g.clouds.Draw(screen, g.atlas)
	g.foreground.Draw(screen, g.atlas)
	g.sprites.Draw(screen, g.atlas)
	g.background.Draw(screen, g.atlas)

	if g.cfg.debug {
		p := g.sim.Player()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("f%d %s %s cd%d\nenemies %d sprites %d",
			g.sim.FrameCount(), p.Sword(), p.State(), p.DamageCooldown(), g.sim.EnemyCount(), g.sprites.InUse()))
	}
	if g.result != nil {
		g.result.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

// Close releases the audio, watcher and run store.
func (g *Game) Close() error {
	g.audio.StopMusic()
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.store.Close())
	return errors.Join(errs...)
}
