// Package autopilot steers a snake from published snapshots. It plays the
// role of a keyboard: it reads the latest state and enqueues inputs.
package autopilot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/grid"
	"github.com/cbodonnell/snaky/pkg/log"
	"github.com/cbodonnell/snaky/pkg/queue"
	"github.com/cbodonnell/snaky/pkg/state"
)

// preference breaks ties between equally good moves.
var preference = [4]types.Direction{
	types.DirectionUp,
	types.DirectionRight,
	types.DirectionDown,
	types.DirectionLeft,
}

type Pilot struct {
	stateManager      state.StateManager
	inputQueue        queue.Queue[types.Input]
	pollInterval      time.Duration
	restartOnGameOver bool
	logger            *log.Logger

	lastSession string
	lastTicks   uint64
	restarted   string
}

// NewPilotOptions contains options for creating a new Pilot.
type NewPilotOptions struct {
	StateManager state.StateManager
	InputQueue   queue.Queue[types.Input]
	// PollInterval defaults to 10ms
	PollInterval time.Duration
	// RestartOnGameOver enqueues a restart once a session is over
	RestartOnGameOver bool
	Logger            *log.Logger
}

func NewPilot(opts NewPilotOptions) *Pilot {
	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = 10 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().With("autopilot")
	}
	return &Pilot{
		stateManager:      opts.StateManager,
		inputQueue:        opts.InputQueue,
		pollInterval:      pollInterval,
		restartOnGameOver: opts.RestartOnGameOver,
		logger:            logger,
	}
}

// Run polls the state manager until the context is done.
func (p *Pilot) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.poll(ctx); err != nil {
				return err
			}
		}
	}
}

// poll reads the latest snapshot and enqueues at most one input for it.
func (p *Pilot) poll(ctx context.Context) error {
	snapshot, err := p.stateManager.Get(ctx)
	if errors.Is(err, state.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	if snapshot.GameOver {
		if p.restartOnGameOver && p.restarted != snapshot.SessionID {
			p.restarted = snapshot.SessionID
			p.enqueue(types.CommandInput(types.CommandRestart))
		}
		return nil
	}

	// one decision per snake move
	if snapshot.SessionID == p.lastSession && snapshot.Ticks == p.lastTicks {
		return nil
	}
	p.lastSession = snapshot.SessionID
	p.lastTicks = snapshot.Ticks

	d := Choose(snapshot)
	if d == types.DirectionNone || d == snapshot.Heading {
		return nil
	}
	p.logger.Trace("Steering %s from %s", d, snapshot.Heading)
	p.enqueue(types.DirectionInput(d))
	return nil
}

func (p *Pilot) enqueue(input types.Input) {
	if err := p.inputQueue.Enqueue(input); err != nil {
		p.logger.Warn("Failed to enqueue input: %v", err)
	}
}

// LegalMoves returns the moves the snake can make without dying on the
// next step, in tie-break order. Reversing onto the neck is never legal.
func LegalMoves(snapshot types.Snapshot) []types.Direction {
	head, ok := snapshot.Head()
	if !ok || snapshot.GridSize <= 0 {
		return nil
	}
	g, err := grid.New(snapshot.GridSize)
	if err != nil {
		return nil
	}

	occ := g.NewOccupancy()
	body := snapshot.Snake
	// the tail moves away unless the snake is still growing
	if len(body) > 1 && len(body) >= snapshot.TargetLength {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		occ.Mark(seg.Position, grid.TagSnake)
	}
	occ.MarkAll(snapshot.Obstacles, grid.TagObstacle)

	moves := []types.Direction{}
	for _, d := range preference {
		if d == snapshot.Heading.Opposite() {
			continue
		}
		next := head.Add(d)
		if !g.InBounds(next) {
			if snapshot.WallMode {
				continue
			}
			next = g.Wrap(next)
		}
		if occ.Occupied(next, grid.TagSnake, grid.TagObstacle) {
			continue
		}
		moves = append(moves, d)
	}
	return moves
}

// Choose picks the legal move that brings the head closest to any food.
// It returns DirectionNone when the session is not running or no move is
// legal.
func Choose(snapshot types.Snapshot) types.Direction {
	if snapshot.State != types.StateRunning {
		return types.DirectionNone
	}
	moves := LegalMoves(snapshot)
	if len(moves) == 0 {
		return types.DirectionNone
	}
	if len(snapshot.Foods) == 0 {
		for _, d := range moves {
			if d == snapshot.Heading {
				return d
			}
		}
		return moves[0]
	}

	g, _ := grid.New(snapshot.GridSize)
	head, _ := snapshot.Head()
	wrap := !snapshot.WallMode

	best := types.DirectionNone
	bestDistance := 0
	for _, d := range moves {
		next := g.Wrap(head.Add(d))
		distance := nearestFood(g, next, snapshot.Foods, wrap)
		if best == types.DirectionNone || distance < bestDistance {
			best = d
			bestDistance = distance
		}
	}
	return best
}

func nearestFood(g grid.Grid, from types.Position, foods []types.Food, wrap bool) int {
	nearest := -1
	for _, f := range foods {
		if d := g.Distance(from, f.Position, wrap); nearest < 0 || d < nearest {
			nearest = d
		}
	}
	return nearest
}
