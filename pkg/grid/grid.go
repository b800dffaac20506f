// Package grid provides the square lattice the game is played on.
package grid

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cbodonnell/snaky/pkg/game/types"
)

// ErrPlacementExhausted is returned when random placement runs out of
// attempts, which means the grid is too small or too crowded.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// Grid is an N x N lattice. It holds no mutable state.
type Grid struct {
	size int
}

func New(size int) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("invalid grid size: %d", size)
	}
	return Grid{size: size}, nil
}

// Size returns N.
func (g Grid) Size() int {
	return g.size
}

// Cells returns N*N.
func (g Grid) Cells() int {
	return g.size * g.size
}

// Wrap maps any position onto the grid, treating it as a torus.
func (g Grid) Wrap(p types.Position) types.Position {
	return types.Position{X: mod(p.X, g.size), Y: mod(p.Y, g.size)}
}

// InBounds reports whether p lies on the grid.
func (g Grid) InBounds(p types.Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Center returns the middle cell.
func (g Grid) Center() types.Position {
	return types.Position{X: g.size / 2, Y: g.size / 2}
}

// RandomPosition draws a cell uniformly.
func (g Grid) RandomPosition(rng *rand.Rand) types.Position {
	return types.Position{X: rng.Intn(g.size), Y: rng.Intn(g.size)}
}

// Distance returns the Manhattan distance between a and b. When wrap is
// set, each axis takes the shorter way around the torus.
func (g Grid) Distance(a, b types.Position, wrap bool) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if wrap {
		dx = min(dx, g.size-dx)
		dy = min(dy, g.size-dy)
	}
	return dx + dy
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
