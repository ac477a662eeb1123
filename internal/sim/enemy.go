package sim

import (
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/fixnum"
)

// Playfield constants. The simulation runs in the handheld's native
// 240x160 pixel space; the renderer scales to the terminal.
const (
	FieldW = 240
	FieldH = 160

	// SpriteCell is the fixed sprite cell size. It doubles as the
	// broad-phase collision gate width; kept literal rather than derived
	// from hit-box sizes for parity with the original constants.
	SpriteCell = 32

	bgTilesHeight  = 14
	bgTilesOffsetY = (20 - bgTilesHeight) / 2
	groundTileY    = 11 + bgTilesOffsetY

	// GroundY is the pixel row of the ground line.
	GroundY = groundTileY*8 + 2

	// PlayerGroundedY is the player's resting y position.
	PlayerGroundedY = GroundY - SpriteCell

	// CactusY is the fixed spawn y for cacti.
	CactusY = GroundY - SpriteCell

	// PlayerX is the player's fixed horizontal position.
	PlayerX = 16

	// SpawnX is where enemies enter, just off the right edge.
	SpawnX = 8 * 30

	// OffscreenX is the pruning threshold: enemies whose floored x drops
	// below it are removed from the pool.
	OffscreenX = -SpriteCell
)

// Kind identifies an enemy type.
type Kind uint8

const (
	KindBird Kind = iota
	KindCactus
)

func (k Kind) String() string {
	switch k {
	case KindBird:
		return "bird"
	case KindCactus:
		return "cactus"
	default:
		return "unknown"
	}
}

// Hit-box rectangles, one fixed rectangle per sprite kind, relative to the
// sprite cell origin. Translated by the floored entity position before each
// collision test.
var (
	playerHitBox = core.NewRect(9, 4, 18, 27)
	birdHitBox   = core.NewRect(1, 13, 28, 7)
	cactusHitBox = core.NewRect(1, 6, 27, 25)
)

// HitBox returns the kind's collision rectangle relative to its sprite cell.
func (k Kind) HitBox() core.Rect {
	if k == KindBird {
		return birdHitBox
	}
	return cactusHitBox
}

// PlayerHitBox returns the player's collision rectangle relative to its
// sprite cell.
func PlayerHitBox() core.Rect {
	return playerHitBox
}

// Enemy is an active obstacle owned by the session's pool.
type Enemy struct {
	Kind Kind
	Pos  fixnum.Vec2
}

// Player holds the runner's vertical physics state. The horizontal position
// is fixed; the world scrolls instead.
type Player struct {
	Pos           fixnum.Vec2
	VerticalSpeed fixnum.Num
	Jumping       bool
}
