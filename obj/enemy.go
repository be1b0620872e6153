package obj

import "github.com/milk9111/purplenight/fixed"

// EnemyKind selects the enemy behaviour.
type EnemyKind int

const (
	EnemySlime EnemyKind = iota
	EnemyBat
)

func (k EnemyKind) String() string {
	if k == EnemyBat {
		return "bat"
	}
	return "slime"
}

// enemyBehaviour is the per-kind state machine. It receives the shared
// entity so the behaviour itself only carries animation and state.
type enemyBehaviour interface {
	update(e *Entity, p *Player, level Collider, t *Tuning, sfx *Sfx) Instruction
	alive() bool
	stateName() string
}

// Enemy pairs an entity with its behaviour.
type Enemy struct {
	entity    Entity
	kind      EnemyKind
	behaviour enemyBehaviour
}

// NewEnemy creates an enemy of kind at pos.
func NewEnemy(sprites SpriteAllocator, kind EnemyKind, pos fixed.Vector, t *Tuning) Enemy {
	var (
		mask fixed.Rect[int]
		tile int
		b    enemyBehaviour
	)
	switch kind {
	case EnemyBat:
		mask = fixed.Rect[int]{Size: fixed.P(12, 4)}
		tile = batFirstTile * 4
		b = &Bat{}
	default:
		mask = fixed.Rect[int]{Size: fixed.P(4, 11)}
		tile = slimeFirstTile * 4
		b = &Slime{}
	}

	e := NewEntity(sprites, mask, t.ProbeMargin)
	e.Position = pos
	e.sprite.SetTileID(tile)
	e.sprite.Show()
	e.sprite.Commit()

	return Enemy{entity: e, kind: kind, behaviour: b}
}

func (en *Enemy) Entity() *Entity { return &en.entity }
func (en *Enemy) Kind() EnemyKind { return en.kind }

// Alive is false once the enemy has been killed, even while its death
// animation is still playing.
func (en *Enemy) Alive() bool { return en.behaviour.alive() }

// StateName is a short label for logs and debugging.
func (en *Enemy) StateName() string { return en.behaviour.stateName() }

// Slime returns the slime behaviour if this enemy is one.
func (en *Enemy) Slime() (*Slime, bool) {
	s, ok := en.behaviour.(*Slime)
	return s, ok
}

// Bat returns the bat behaviour if this enemy is one.
func (en *Enemy) Bat() (*Bat, bool) {
	b, ok := en.behaviour.(*Bat)
	return b, ok
}

// Update runs one frame of the enemy's state machine.
func (en *Enemy) Update(p *Player, level Collider, t *Tuning, sfx *Sfx) Instruction {
	return en.behaviour.update(&en.entity, p, level, t, sfx)
}

func (en *Enemy) Commit(offset fixed.Vector) { en.entity.Commit(offset) }
