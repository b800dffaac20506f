package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/snaky/pkg/food"
	"github.com/cbodonnell/snaky/pkg/game/constants"
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/grid"
	"github.com/cbodonnell/snaky/pkg/obstacles"
	"github.com/cbodonnell/snaky/pkg/snake"
	"github.com/google/uuid"
)

// Session is a single game: one snake, its obstacles and its food.
// It is not safe for concurrent use; the driver owns it.
type Session struct {
	settings Settings
	grid     grid.Grid
	rng      *rand.Rand

	id        uuid.UUID
	snake     *snake.Snake
	obstacles *obstacles.Field
	food      *food.Field
	score     int
	ticks     uint64
	wallMode  bool
	state     types.State
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	Settings Settings
	// Rand drives every random choice in the session. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// Now is the clock reading the session starts at
	Now time.Time
}

// NewSession validates the settings and starts a running session.
func NewSession(opts NewSessionOptions) (*Session, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	g, err := grid.New(opts.Settings.GridSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		settings: opts.Settings,
		grid:     g,
		rng:      rng,
		wallMode: opts.Settings.WallMode,
	}
	if err := s.Reset(opts.Now); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current game and starts a new one: a snake of length
// one at the grid center heading right, fresh obstacles and fresh food.
// The wall mode is kept. On error the previous game is left untouched.
func (s *Session) Reset(now time.Time) error {
	sn := snake.New(snake.NewSnakeOptions{
		Grid:         s.grid,
		Start:        s.grid.Center(),
		Heading:      types.DirectionRight,
		MoveInterval: s.settings.MoveInterval,
		Now:          now,
	})

	obs := obstacles.NewField(obstacles.NewFieldOptions{
		Grid:        s.grid,
		Rand:        s.rng,
		Interval:    s.settings.ObstacleMoveInterval,
		MaxAttempts: s.settings.MaxPlacementAttempts,
		Now:         now,
	})
	if err := obs.Generate(s.settings.ObstacleCount, sn.Body()); err != nil {
		return fmt.Errorf("failed to generate obstacles: %w", err)
	}

	fd := food.NewField(food.NewFieldOptions{
		Grid:        s.grid,
		Rand:        s.rng,
		MaxAttempts: s.settings.MaxPlacementAttempts,
	})
	if err := fd.Regenerate(sn.Body(), obs.Positions()); err != nil {
		return fmt.Errorf("failed to generate food: %w", err)
	}

	s.id = uuid.New()
	s.snake = sn
	s.obstacles = obs
	s.food = fd
	s.score = 0
	s.ticks = 0
	s.state = types.StateRunning
	return nil
}

// Tick advances the session by one driver iteration and returns the
// resulting snapshot. Intents given while the session is not running are
// dropped. The only error is a failure to place a new food batch, which
// means the grid is too crowded to continue.
func (s *Session) Tick(intent types.Direction, now time.Time) (types.Snapshot, error) {
	if s.state != types.StateRunning {
		return s.Snapshot(), nil
	}

	s.snake.QueueDirection(intent)
	s.obstacles.RelocateIfDue(now, s.snake.Body(), s.food.Positions())

	outcome, moved := s.snake.Advance(now, s.obstacles, s.wallMode)
	if !moved {
		return s.Snapshot(), nil
	}
	if outcome == snake.Collided {
		s.state = types.StateGameOver
		return s.Snapshot(), nil
	}
	s.ticks++

	if err := s.eat(s.snake.Head()); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// eat applies the food at p, if any, and replenishes the field once the
// last item is gone.
func (s *Session) eat(p types.Position) error {
	kind, ok := s.food.Consume(p)
	if !ok {
		return nil
	}

	s.score += kind.ScoreDelta()
	if m, ok := kind.SpeedMultiplier(); ok {
		s.snake.SetSpeedMultiplier(m)
	}
	s.snake.Grow()

	if !s.food.Empty() {
		return nil
	}
	if err := s.food.Regenerate(s.snake.Body(), s.obstacles.Positions()); err != nil {
		return fmt.Errorf("failed to regenerate food: %w", err)
	}
	s.snake.SetSpeedMultiplier(1.0)
	return nil
}

// Pause stops the session. It has no effect once the game is over.
func (s *Session) Pause() {
	if s.state == types.StateRunning {
		s.state = types.StatePaused
	}
}

// Resume restarts a paused session.
func (s *Session) Resume() {
	if s.state == types.StatePaused {
		s.state = types.StateRunning
	}
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() {
	switch s.state {
	case types.StateRunning:
		s.state = types.StatePaused
	case types.StatePaused:
		s.state = types.StateRunning
	}
}

// ToggleWallMode switches between lethal walls and wrap-around. It is
// allowed in every state.
func (s *Session) ToggleWallMode() {
	s.wallMode = !s.wallMode
}

func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) State() types.State {
	return s.state
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) WallMode() bool {
	return s.wallMode
}

// Speed returns the current effective speed.
func (s *Session) Speed() float64 {
	return EffectiveSpeed(s.settings.BaseSpeed, s.score, s.snake.SpeedMultiplier())
}

// EffectiveSpeed computes the snake speed: the base speed gains 10% for
// every 20 points, capped at 150%, and is then scaled by the food effect
// multiplier.
func EffectiveSpeed(baseSpeed float64, score int, multiplier float64) float64 {
	factor := 1 + float64(score/constants.SpeedScoreStep)*constants.SpeedStepIncrease
	factor = min(factor, constants.MaxSpeedFactor)
	return baseSpeed * factor * multiplier
}
