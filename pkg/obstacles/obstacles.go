// Package obstacles implements the field of moving obstacles.
//
// Obstacles are kept as a slice indexed by obstacle, each entry carrying
// its own position and heading. Every relocation interval all obstacles
// step one cell along their heading, wrapping around the grid.
package obstacles

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/grid"
)

type Field struct {
	grid        grid.Grid
	rng         *rand.Rand
	obstacles   []types.Obstacle
	interval    time.Duration
	lastMove    time.Time
	maxAttempts int
}

// NewFieldOptions contains options for creating a new Field.
type NewFieldOptions struct {
	Grid grid.Grid
	Rand *rand.Rand
	// Interval is the time between two relocations
	Interval time.Duration
	// MaxAttempts bounds the random draws spent placing one obstacle
	MaxAttempts int
	Now         time.Time
}

// NewField creates an empty field. Call Generate to place obstacles.
func NewField(opts NewFieldOptions) *Field {
	return &Field{
		grid:        opts.Grid,
		rng:         opts.Rand,
		interval:    opts.Interval,
		lastMove:    opts.Now,
		maxAttempts: opts.MaxAttempts,
	}
}

// Generate replaces the field with count obstacles on cells free of the
// snake and of each other, each with a random heading.
func (f *Field) Generate(count int, snakeBody []types.Position) error {
	occ := f.grid.NewOccupancy()
	occ.MarkAll(snakeBody, grid.TagSnake)

	obstacles := make([]types.Obstacle, 0, count)
	for i := 0; i < count; i++ {
		pos, err := f.grid.PlaceRandom(f.rng, occ, f.maxAttempts)
		if err != nil {
			return fmt.Errorf("failed to place obstacle %d of %d: %w", i+1, count, err)
		}
		occ.Mark(pos, grid.TagObstacle)
		obstacles = append(obstacles, types.Obstacle{
			Position: pos,
			Heading:  f.randomHeading(),
		})
	}
	f.obstacles = obstacles
	return nil
}

// Set replaces the field contents.
func (f *Field) Set(obstacles []types.Obstacle) {
	f.obstacles = make([]types.Obstacle, len(obstacles))
	copy(f.obstacles, obstacles)
}

// Obstacles returns a copy of the obstacles.
func (f *Field) Obstacles() []types.Obstacle {
	out := make([]types.Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Positions returns the obstacle positions in field order.
func (f *Field) Positions() []types.Position {
	out := make([]types.Position, len(f.obstacles))
	for i, o := range f.obstacles {
		out[i] = o.Position
	}
	return out
}

func (f *Field) Len() int {
	return len(f.obstacles)
}

// Contains reports whether an obstacle sits on p.
func (f *Field) Contains(p types.Position) bool {
	for _, o := range f.obstacles {
		if o.Position == p {
			return true
		}
	}
	return false
}

// RelocateIfDue moves every obstacle one step if the relocation interval
// has elapsed, and reports whether it did.
//
// Obstacles are resolved in order. When an obstacle's step would land on a
// cell already claimed by an earlier obstacle in this pass, or on food, it
// draws one new heading and steps from its starting cell instead. The new
// heading is drawn among the headings whose target is clear; if none is,
// any heading is drawn and the overlap is accepted. The snake body is not
// considered: running into an obstacle is decided by the snake's own move.
func (f *Field) RelocateIfDue(now time.Time, snakeBody []types.Position, foods []types.Position) bool {
	if now.Sub(f.lastMove) < f.interval {
		return false
	}
	f.lastMove = now

	foodAt := make(map[types.Position]bool, len(foods))
	for _, p := range foods {
		foodAt[p] = true
	}
	claimed := make(map[types.Position]bool, len(f.obstacles))
	blocked := func(p types.Position) bool {
		return claimed[p] || foodAt[p]
	}

	for i := range f.obstacles {
		o := &f.obstacles[i]
		next := f.grid.Wrap(o.Position.Add(o.Heading))
		if blocked(next) {
			o.Heading = f.reroll(o.Position, blocked)
			next = f.grid.Wrap(o.Position.Add(o.Heading))
		}
		o.Position = next
		claimed[next] = true
	}
	return true
}

// reroll draws a new heading for an obstacle at from. Unlike a plain
// uniform draw over all four headings, it only picks among headings whose
// target is clear, and falls back to a uniform draw when none is.
func (f *Field) reroll(from types.Position, blocked func(types.Position) bool) types.Direction {
	open := make([]types.Direction, 0, len(types.AllDirections))
	for _, d := range types.AllDirections {
		if !blocked(f.grid.Wrap(from.Add(d))) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return f.randomHeading()
	}
	return open[f.rng.Intn(len(open))]
}

func (f *Field) randomHeading() types.Direction {
	return types.AllDirections[f.rng.Intn(len(types.AllDirections))]
}
