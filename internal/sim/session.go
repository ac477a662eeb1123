// Package sim implements the deterministic dino runner simulation core:
// fixed-point jump physics, the packed-byte spawn scheduler, the bounded
// FIFO enemy pool, AABB collision and the session state machine. It is
// renderer-agnostic; the host loop advances it one frame per display tick.
package sim

import (
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/fixnum"
)

// State is the session's control state.
type State int

const (
	// StateContinue means the simulation is running normally.
	StateContinue State = iota
	// StatePause freezes the simulation until the pause button is pressed again.
	StatePause
	// StateOver is the post-collision state; the score is frozen.
	StateOver
	// StateRestart is terminal: the host must discard this session and
	// construct a fresh one from the same Settings.
	StateRestart
)

func (s State) String() string {
	switch s {
	case StateContinue:
		return "continue"
	case StatePause:
		return "pause"
	case StateOver:
		return "over"
	case StateRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a one-shot occurrence reported in a frame's Result, consumed by
// the host for audio cues. Events carry no payload and expect no reply.
type Event int

const (
	EventJump Event = iota
	EventLevelUp
	EventGameOver
)

// Result is returned by Frame.
type Result struct {
	State  State
	Score  uint32
	Events []Event // valid until the next Frame call
}

// Score derivation: elapsed frames / 6, capped before the counter could
// overflow the 6-digit readout.
const (
	scoreDivisor   = 6
	scoreCap       = 999999
	scoreCapFrames = 6_000_000
)

// Session owns one run of the game: the player, the enemy pool, the spawn
// queue and all frame counters. It is single-threaded by contract; the host
// calls Frame once per tick and nothing inside suspends or blocks.
type Session struct {
	settings Settings
	rng      RandSource
	tracer   Tracer

	state                State
	frameCount           uint32
	framesCurrentLevel   uint32
	framesSinceLastSpawn uint32
	speedLevel           int

	gravity        fixnum.Num // px/frame^2, derived once from the jump settings
	scrollVelocity fixnum.Num
	bgPos          fixnum.Vec2

	player     Player
	enemies    []Enemy
	spawnQueue []SpawnInfo

	events []Event
}

// NewSession constructs a run from immutable settings. rng must not be nil;
// tracer may be nil for silence. The gravity constant solves the symmetric
// jump arc: accelerating at 2h/d^2 from an impulse of -g*d returns the
// player to ground level after exactly d frames.
func NewSession(settings Settings, rng RandSource, tracer Tracer) *Session {
	if tracer == nil {
		tracer = NopTracer
	}

	d := settings.JumpDurationFrames
	gravity := fixnum.FromInt(2 * settings.JumpHeightPx).Div(fixnum.FromInt(d * d))

	return &Session{
		settings:       settings,
		rng:            rng,
		tracer:         tracer,
		state:          StateContinue,
		gravity:        gravity,
		scrollVelocity: settings.InitScrollVelocity,
		player: Player{
			Pos: fixnum.V2(PlayerX, PlayerGroundedY),
		},
		enemies:    make([]Enemy, 0, settings.MaxEnemies),
		spawnQueue: make([]SpawnInfo, 0, spawnQueueLen),
	}
}

// Settings returns the session's immutable configuration.
func (s *Session) Settings() Settings {
	return s.settings
}

// State returns the current control state.
func (s *Session) State() State {
	return s.state
}

// Score derives the current score from elapsed active frames. It is
// monotone while the session continues and frozen once over.
func (s *Session) Score() uint32 {
	if s.frameCount < scoreCapFrames {
		return s.frameCount / scoreDivisor
	}
	return scoreCap
}

// Frame advances the simulation by one display tick and returns the
// resulting state. Input is the edge-triggered sample for this tick.
// While paused or over, only input polling and transition checks run.
func (s *Session) Frame(in core.InputFrame) Result {
	s.events = s.events[:0]

	if in.Has(core.ActionRestart) {
		s.state = StateRestart
		return s.result()
	}
	switch s.state {
	case StateRestart:
		return s.result()
	case StateOver:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			s.state = StateRestart
		}
		return s.result()
	}
	// Pause toggling short-circuits the rest of the frame.
	if in.Has(core.ActionPause) {
		if s.state == StatePause {
			s.state = StateContinue
		} else {
			s.state = StatePause
		}
		return s.result()
	}
	if s.state == StatePause {
		return s.result()
	}

	s.frameCount++
	s.framesCurrentLevel++
	s.framesSinceLastSpawn++

	// Refill the spawn look-ahead before any delay checks.
	if len(s.spawnQueue) == 0 {
		s.refillSpawnQueue()
	}

	s.stepLevel()
	s.stepPlayer(in)
	s.stepSpawn()
	s.stepEnemies()

	s.bgPos.X += s.scrollVelocity
	return s.result()
}

func (s *Session) result() Result {
	return Result{State: s.state, Score: s.Score(), Events: s.events}
}

func (s *Session) refillSpawnQueue() {
	batch := unpackSpawnBytes(s.rng.Uint32())
	s.spawnQueue = append(s.spawnQueue[:0], batch[:]...)
}

func (s *Session) stepLevel() {
	if s.framesCurrentLevel < s.settings.FramesPerLevel {
		return
	}
	s.tracer.Tracef("level up: %d", s.speedLevel+1)
	s.scrollVelocity += s.settings.ScrollVelocityPerLevel
	s.speedLevel++
	s.framesCurrentLevel = 0
	s.events = append(s.events, EventLevelUp)
}

// stepPlayer applies the jump physics. Motion is applied before the gravity
// accumulation; this motion-first ordering is load-bearing for the exact
// arc shape and must not be swapped.
func (s *Session) stepPlayer(in core.InputFrame) {
	if s.player.Jumping {
		s.player.Pos.Y += s.player.VerticalSpeed
		if s.player.Pos.Y.Floor() >= PlayerGroundedY {
			s.player.Pos.Y = fixnum.FromInt(PlayerGroundedY)
			s.player.Jumping = false
		}
		s.player.VerticalSpeed += s.gravity
	} else if in.Has(core.ActionJump) {
		s.player.VerticalSpeed = -s.gravity.MulInt(s.settings.JumpDurationFrames)
		s.player.Jumping = true
		s.events = append(s.events, EventJump)
	}
}

// stepSpawn fires the front queue entry once its delay has elapsed. The
// entry is always consumed and the counter always reset; the enemy itself
// is dropped silently when the pool is at capacity.
func (s *Session) stepSpawn() {
	info := s.spawnQueue[0]
	if s.framesSinceLastSpawn <= info.Delay() {
		return
	}
	s.spawnQueue = s.spawnQueue[1:]
	s.tracer.Tracef("[T=%d, dt=%d] spawn: %d %s %d",
		s.frameCount, s.framesSinceLastSpawn, info.Delay(), info.Kind(), info.Lane())
	s.framesSinceLastSpawn = 0

	if len(s.enemies) >= s.settings.MaxEnemies {
		return
	}

	switch info.Kind() {
	case KindBird:
		s.enemies = append(s.enemies, Enemy{
			Kind: KindBird,
			Pos:  fixnum.V2(SpawnX, BirdLaneY(info.Lane())),
		})
	case KindCactus:
		s.enemies = append(s.enemies, Enemy{
			Kind: KindCactus,
			Pos:  fixnum.V2(SpawnX, CactusY),
		})
	}
}

// stepEnemies advances every active enemy, runs collision detection, and
// batch-prunes off-screen enemies from the front of the pool. Insertion
// order plus strictly decreasing x means the oldest enemies exit first, so
// the front drain is safe. The pass always completes even after a collision
// so the removal bookkeeping stays consistent; once the session is over no
// further enemies move or collide.
func (s *Session) stepEnemies() {
	out := 0
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Pos.X.Floor() < OffscreenX {
			out++
			continue
		}
		if s.state == StateOver {
			continue
		}

		e.Pos.X -= s.scrollVelocity

		// Broad-phase: skip the rectangle test unless the enemy is within
		// one sprite cell of the player horizontally.
		gate := fixnum.FromInt(SpriteCell)
		if s.player.Pos.X > e.Pos.X+gate || e.Pos.X > s.player.Pos.X+gate {
			continue
		}

		ex, ey := e.Pos.Floor()
		px, py := s.player.Pos.Floor()
		enemyBox := e.Kind.HitBox().Translate(ex, ey)
		playerBox := playerHitBox.Translate(px, py)
		if enemyBox.Touches(playerBox) {
			s.tracer.Tracef("collide: %s", e.Kind)
			s.state = StateOver
			s.events = append(s.events, EventGameOver)
		}
	}
	s.enemies = s.enemies[:copy(s.enemies, s.enemies[out:])]
}

// EnemyView is one pool entry in pixel coordinates.
type EnemyView struct {
	Kind Kind
	X, Y int
}

// Snapshot is a renderer-facing view of the session, all positions floored
// to pixels.
type Snapshot struct {
	State      State
	Score      uint32
	HighScore  uint32
	Frame      uint32
	SpeedLevel int

	PlayerX, PlayerY int
	Jumping          bool

	ScrollX int
	Enemies []EnemyView
}

// Snapshot captures the current frame for rendering.
func (s *Session) Snapshot() Snapshot {
	px, py := s.player.Pos.Floor()
	enemies := make([]EnemyView, len(s.enemies))
	for i, e := range s.enemies {
		x, y := e.Pos.Floor()
		enemies[i] = EnemyView{Kind: e.Kind, X: x, Y: y}
	}
	return Snapshot{
		State:      s.state,
		Score:      s.Score(),
		HighScore:  s.settings.HighScore,
		Frame:      s.frameCount,
		SpeedLevel: s.speedLevel,
		PlayerX:    px,
		PlayerY:    py,
		Jumping:    s.player.Jumping,
		ScrollX:    s.bgPos.X.Floor(),
		Enemies:    enemies,
	}
}
