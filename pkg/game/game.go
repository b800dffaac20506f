package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/snaky/pkg/game/constants"
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/log"
	"github.com/cbodonnell/snaky/pkg/queue"
	"github.com/cbodonnell/snaky/pkg/state"
)

// GameManager drives a session at a fixed tick rate. It is the only
// goroutine that touches the session.
type GameManager struct {
	session        *Session
	inputQueue     queue.Queue[types.Input]
	stateManager   state.StateManager
	tickInterval   time.Duration
	clock          func() time.Time
	stopOnGameOver bool
	logger         *log.Logger

	last types.Snapshot
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Session      *Session
	InputQueue   queue.Queue[types.Input]
	StateManager state.StateManager
	// TickInterval defaults to one sixtieth of a second
	TickInterval time.Duration
	// Clock defaults to time.Now
	Clock func() time.Time
	// StopOnGameOver makes Start return once the session ends
	StopOnGameOver bool
	Logger         *log.Logger
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second / time.Duration(constants.TickRate)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().With("manager")
	}
	return &GameManager{
		session:        opts.Session,
		inputQueue:     opts.InputQueue,
		stateManager:   opts.StateManager,
		tickInterval:   tickInterval,
		clock:          clock,
		stopOnGameOver: opts.StopOnGameOver,
		logger:         logger,
	}
}

// Start publishes the initial snapshot and runs the game loop until the
// context is done. A failed tick stops the loop and is returned.
func (gm *GameManager) Start(ctx context.Context) error {
	gm.last = gm.session.Snapshot()
	if err := gm.stateManager.Set(ctx, gm.last); err != nil {
		return fmt.Errorf("failed to publish initial snapshot: %w", err)
	}
	gm.logger.Info("Session %s started on a %dx%d grid", gm.last.SessionID, gm.last.GridSize, gm.last.GridSize)

	ticker := time.NewTicker(gm.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot, err := gm.Step(ctx, gm.clock())
			if err != nil {
				return fmt.Errorf("failed to run game tick: %w", err)
			}
			if gm.stopOnGameOver && snapshot.GameOver {
				return nil
			}
		}
	}
}

// Step runs one iteration of the game loop at the given time: it applies
// every pending input, ticks the session and publishes the result.
func (gm *GameManager) Step(ctx context.Context, now time.Time) (types.Snapshot, error) {
	intent, err := gm.processInputs(now)
	if err != nil {
		return types.Snapshot{}, err
	}

	snapshot, err := gm.session.Tick(intent, now)
	if err != nil {
		return snapshot, err
	}
	if err := gm.stateManager.Set(ctx, snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to publish snapshot: %w", err)
	}

	gm.logTransitions(snapshot)
	gm.last = snapshot
	return snapshot, nil
}

// processInputs drains the input queue. Commands are applied in arrival
// order; of the direction intents only the last one is kept. A restart
// drops the intents that arrived before it.
func (gm *GameManager) processInputs(now time.Time) (types.Direction, error) {
	intent := types.DirectionNone
	for _, input := range gm.inputQueue.ReadAll() {
		if input.Direction != types.DirectionNone {
			intent = input.Direction
		}
		switch input.Command {
		case types.CommandNone:
		case types.CommandTogglePause:
			gm.session.TogglePause()
			gm.logger.Debug("Session %s", gm.session.State())
		case types.CommandToggleWallMode:
			gm.session.ToggleWallMode()
			gm.logger.Debug("Wall mode set to %t", gm.session.WallMode())
		case types.CommandRestart:
			if gm.session.State() != types.StateGameOver {
				continue
			}
			if err := gm.session.Reset(now); err != nil {
				return types.DirectionNone, fmt.Errorf("failed to restart session: %w", err)
			}
			intent = types.DirectionNone
			gm.logger.Info("Session %s started", gm.session.ID())
		default:
			gm.logger.Warn("Unhandled command: %s", input.Command)
		}
	}
	return intent, nil
}

func (gm *GameManager) logTransitions(snapshot types.Snapshot) {
	if snapshot.SessionID == gm.last.SessionID && snapshot.Score > gm.last.Score {
		gm.logger.Debug("Food eaten, score %d, speed %.2f, %d food left", snapshot.Score, snapshot.Speed, snapshot.FoodCount())
	}
	if snapshot.GameOver && !(gm.last.GameOver && snapshot.SessionID == gm.last.SessionID) {
		head, _ := snapshot.Head()
		gm.logger.Info("Game over at %s with score %d after %d moves", head, snapshot.Score, snapshot.Ticks)
	}
	if gm.logger.Enabled(log.LogLevelTrace) && snapshot.Ticks != gm.last.Ticks {
		gm.logger.Trace("%s", snapshot.Board())
	}
}
