package obj

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/ecs"
	"github.com/milk9111/purplenight/fixed"
	"github.com/milk9111/purplenight/levels"
)

// Status is the outcome of a frame.
type Status int

const (
	StatusContinue Status = iota
	StatusLost
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "continue"
	}
}

// Stats counts what happened during a run.
type Stats struct {
	Frames       int
	SlimesKilled int
	BatsKilled   int
	DamageTaken  int
	Heals        int
}

// Layers are the scrolling tile layers. Nil layers are skipped.
type Layers struct {
	Background Background
	Foreground Background
	Clouds     Background
}

var cloudsOrigin = fixed.P(0, -5)

// Game owns the whole simulation for one run of one level.
type Game struct {
	level     *levels.Level
	tiles     *TileMap
	tuning    Tuning
	sprites   SpriteAllocator
	layers    Layers
	sfx       *Sfx
	rng       *rand.Rand
	logger    *log.Logger
	camera    *Camera
	player    *Player
	enemies   *ecs.Arena[Enemy]
	particles *ecs.Arena[Particle]

	spawned int
	status  Status
	stats   Stats
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTuning replaces DefaultTuning.
func WithTuning(t Tuning) Option {
	return func(g *Game) { g.tuning = t }
}

// NewGame builds the level, spawns the player and the level's enemies and
// starts the background track. seed drives every random choice in the run.
func NewGame(lvl *levels.Level, sprites SpriteAllocator, layers Layers, audio AudioSink, seed uint64, opts ...Option) (*Game, error) {
	if lvl == nil {
		return nil, fmt.Errorf("new game: %w", levels.ErrInvalidDimensions)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		level:     lvl,
		tiles:     NewTileMap(lvl),
		tuning:    DefaultTuning(),
		sprites:   sprites,
		layers:    layers,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger:    log.New(io.Discard),
		enemies:   ecs.NewArena[Enemy](len(lvl.SlimeSpawns) + len(lvl.BatSpawns)),
		particles: ecs.NewArena[Particle](16),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.layers.Background == nil {
		g.layers.Background = nopBackground{}
	}
	if g.layers.Foreground == nil {
		g.layers.Foreground = nopBackground{}
	}
	if g.layers.Clouds == nil {
		g.layers.Clouds = nopBackground{}
	}

	g.sfx = NewSfx(audio, g.rng)
	g.camera = NewCamera(common.ScreenWidth, common.ScreenHeight, g.tuning.ShakeMagnitude, g.tuning.CameraFollow)
	size := g.tiles.PixelSize()
	g.camera.SetWorldBounds(size.X, size.Y)

	g.player = NewPlayer(sprites, &g.tuning)
	g.camera.Follow(g.player.Position())

	for _, s := range lvl.SlimeSpawns {
		g.SpawnEnemy(EnemySlime, fixed.V(s.X, s.Y-7))
	}
	for _, s := range lvl.BatSpawns {
		g.SpawnEnemy(EnemyBat, fixed.V(s.X, s.Y))
	}

	g.sfx.PurpleNight()
	g.logger.Info("game started", "level", lvl.Name, "seed", seed, "enemies", g.spawned)
	return g, nil
}

func (g *Game) Player() *Player      { return g.player }
func (g *Game) Camera() *Camera      { return g.camera }
func (g *Game) TileMap() *TileMap    { return g.tiles }
func (g *Game) Tuning() *Tuning      { return &g.tuning }
func (g *Game) Status() Status       { return g.status }
func (g *Game) FrameCount() int      { return g.stats.Frames }
func (g *Game) EnemyCount() int      { return g.enemies.Len() }
func (g *Game) ParticleCount() int   { return g.particles.Len() }
func (g *Game) Level() *levels.Level { return g.level }

// Stats returns a snapshot of the run statistics.
func (g *Game) Stats() Stats { return g.stats }

// Enemy resolves a handle returned by SpawnEnemy.
func (g *Game) Enemy(h ecs.Handle) (*Enemy, bool) { return g.enemies.Get(h) }

// Particle resolves a handle returned by SpawnParticle.
func (g *Game) Particle(h ecs.Handle) (*Particle, bool) { return g.particles.Get(h) }

// EachEnemy visits the live enemies. fn must not spawn or remove enemies.
func (g *Game) EachEnemy(fn func(h ecs.Handle, e *Enemy)) { g.enemies.Each(fn) }

// EachParticle visits the live particles. fn must not spawn or remove
// particles.
func (g *Game) EachParticle(fn func(h ecs.Handle, p *Particle)) { g.particles.Each(fn) }

// SpawnEnemy adds an enemy at pos.
func (g *Game) SpawnEnemy(kind EnemyKind, pos fixed.Vector) ecs.Handle {
	h := g.enemies.Insert(NewEnemy(g.sprites, kind, pos, &g.tuning))
	g.spawned++
	g.logger.Debug("enemy spawned", "kind", kind, "handle", h, "pos", pos)
	return h
}

// SpawnParticle adds a particle at pos.
func (g *Game) SpawnParticle(kind ParticleKind, pos fixed.Vector) ecs.Handle {
	return g.particles.Insert(NewParticle(g.sprites, kind, pos, &g.tuning))
}

func (g *Game) random() int32 {
	return int32(g.rng.Uint32())
}

// AdvanceFrame runs one frame of the simulation with in as the input
// snapshot. Once the run has ended further calls return the final status
// without simulating.
func (g *Game) AdvanceFrame(in Input) Status {
	if g.status != StatusContinue {
		return g.status
	}
	state := StatusContinue

	g.sfx.VBlank()

	if instr := g.player.Update(in, g.tiles, g.sfx); instr.Kind == InstructionCreateParticle {
		g.SpawnParticle(instr.Particle, instr.Position)
	}

	g.camera.Follow(g.player.Position())
	offset := g.camera.FrameOffset(g.random)

	g.commitLayers(offset)

	var remove []ecs.Handle
	g.enemies.Each(func(h ecs.Handle, en *Enemy) {
		wasAlive := en.Alive()
		instr := en.Update(g.player, g.tiles, &g.tuning, g.sfx)
		if wasAlive && !en.Alive() {
			g.recordKill(h, en)
		}
		if g.apply(instr, &state) {
			remove = append(remove, h)
		}
		if instr.Kind == InstructionCreateParticle {
			g.SpawnParticle(instr.Particle, instr.Position)
		}
		en.Commit(offset)
	})

	g.player.Commit(offset)

	for _, h := range remove {
		if en, ok := g.enemies.Remove(h); ok {
			en.entity.release()
			g.logger.Debug("enemy removed", "kind", en.kind, "handle", h)
		}
	}

	remove = remove[:0]
	var pending []Instruction
	g.particles.Each(func(h ecs.Handle, pt *Particle) {
		instr := pt.Update(g.player, &g.tuning)
		if g.apply(instr, &state) {
			remove = append(remove, h)
		}
		if instr.Kind == InstructionCreateParticle {
			pending = append(pending, instr)
		}
		pt.Commit(offset)
	})
	for _, h := range remove {
		if pt, ok := g.particles.Remove(h); ok {
			pt.entity.release()
		}
	}
	for _, instr := range pending {
		g.SpawnParticle(instr.Particle, instr.Position)
	}

	g.stats.Frames++

	if state == StatusContinue && g.spawned > 0 && !g.anyEnemyAlive() {
		state = StatusWon
	}
	if state != StatusContinue {
		g.status = state
		g.sfx.StopMusic()
		g.logger.Info("run over", "status", state, "frames", g.stats.Frames,
			"slimes", g.stats.SlimesKilled, "bats", g.stats.BatsKilled)
	}
	return state
}

// apply handles the instructions that touch the player. It reports whether
// the actor asked to be removed.
func (g *Game) apply(instr Instruction, state *Status) bool {
	switch instr.Kind {
	case InstructionRemove:
		return true
	case InstructionHealPlayerAndRemove:
		g.player.Heal()
		g.stats.Heals++
		g.sfx.PlayerHeal()
		g.logger.Debug("player healed", "sword", g.player.Sword())
		return true
	case InstructionDamagePlayer:
		alive, damaged := g.player.Damage()
		if !alive {
			*state = StatusLost
		}
		if damaged {
			g.stats.DamageTaken++
			g.camera.Shake(g.tuning.ShakeFrames)
			g.sfx.PlayerHurt()
			g.logger.Debug("player damaged", "sword", g.player.Sword(), "alive", alive)
		}
	}
	return false
}

func (g *Game) recordKill(h ecs.Handle, en *Enemy) {
	switch en.Kind() {
	case EnemySlime:
		g.stats.SlimesKilled++
	case EnemyBat:
		g.stats.BatsKilled++
	}
	g.logger.Debug("enemy killed", "kind", en.Kind(), "handle", h, "frame", g.stats.Frames)
}

func (g *Game) anyEnemyAlive() bool {
	alive := false
	g.enemies.Each(func(_ ecs.Handle, en *Enemy) {
		if en.Alive() {
			alive = true
		}
	})
	return alive
}

func (g *Game) commitLayers(offset fixed.Vector) {
	pos := fixed.Floor(offset)
	g.layers.Clouds.SetPosition(fixed.Floor(offset.DivInt(2)).Add(cloudsOrigin))
	g.layers.Background.SetPosition(pos)
	g.layers.Foreground.SetPosition(pos)
	g.layers.Clouds.Commit()
	g.layers.Background.Commit()
	g.layers.Foreground.Commit()
}
