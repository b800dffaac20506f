package snake

import (
	"time"

	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/grid"
)

// Outcome is the result of a call to Advance.
type Outcome uint8

const (
	Continue Outcome = iota
	Collided
)

func (o Outcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "continue"
}

// Blocker reports whether a cell holds an obstacle.
type Blocker interface {
	Contains(p types.Position) bool
}

type Snake struct {
	grid grid.Grid

	// body holds the occupied cells, head first
	body           []types.Position
	heading        types.Direction
	pendingHeading types.Direction
	targetLength   int

	speedMultiplier float64
	moveInterval    time.Duration
	lastMove        time.Time
}

// NewSnakeOptions contains options for creating a new Snake.
type NewSnakeOptions struct {
	Grid  grid.Grid
	Start types.Position
	// Body, when set, replaces Start with a full body, head first
	Body         []types.Position
	Heading      types.Direction
	MoveInterval time.Duration
	Now          time.Time
}

// New creates a snake of length one at Start, or with the given Body.
func New(opts NewSnakeOptions) *Snake {
	heading := opts.Heading
	if !heading.Valid() {
		heading = types.DirectionRight
	}
	body := []types.Position{opts.Start}
	if len(opts.Body) > 0 {
		body = make([]types.Position, len(opts.Body))
		copy(body, opts.Body)
	}
	return &Snake{
		grid:            opts.Grid,
		body:            body,
		heading:         heading,
		pendingHeading:  heading,
		targetLength:    len(body),
		speedMultiplier: 1.0,
		moveInterval:    opts.MoveInterval,
		lastMove:        opts.Now,
	}
}

// Head returns the first body cell.
func (s *Snake) Head() types.Position {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Position {
	out := make([]types.Position, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) PendingHeading() types.Direction {
	return s.pendingHeading
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) SpeedMultiplier() float64 {
	return s.speedMultiplier
}

func (s *Snake) SetSpeedMultiplier(m float64) {
	s.speedMultiplier = m
}

// Contains reports whether p is one of the body cells.
func (s *Snake) Contains(p types.Position) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// QueueDirection sets the heading applied on the next move. A reversal of
// the current heading is dropped, since it would run the head into the neck.
func (s *Snake) QueueDirection(d types.Direction) {
	if !d.Valid() || d == s.heading.Opposite() {
		return
	}
	s.pendingHeading = d
}

// Grow makes the snake one segment longer over the next move.
func (s *Snake) Grow() {
	s.targetLength++
}

// Advance moves the snake one cell if the move interval has elapsed since
// the last move. The returned bool reports whether a move was attempted.
// With wallMode set, leaving the grid is a collision; otherwise the head
// wraps around.
func (s *Snake) Advance(now time.Time, obstacles Blocker, wallMode bool) (Outcome, bool) {
	if now.Sub(s.lastMove) < s.moveInterval {
		return Continue, false
	}
	s.lastMove = now
	s.heading = s.pendingHeading

	next := s.Head().Add(s.heading)
	if wallMode {
		if !s.grid.InBounds(next) {
			return Collided, true
		}
	} else {
		next = s.grid.Wrap(next)
	}

	if s.hitsSelf(next) {
		return Collided, true
	}
	if obstacles != nil && obstacles.Contains(next) {
		return Collided, true
	}

	s.body = append(s.body, types.Position{})
	copy(s.body[1:], s.body)
	s.body[0] = next
	if len(s.body) > s.targetLength {
		s.body = s.body[:len(s.body)-1]
	}
	return Continue, true
}

// hitsSelf checks next against the body. The tail cell only counts when
// the snake is growing, because otherwise it is vacated by this move.
func (s *Snake) hitsSelf(next types.Position) bool {
	check := s.body
	if len(s.body) >= s.targetLength {
		check = s.body[:len(s.body)-1]
	}
	for _, b := range check {
		if b == next {
			return true
		}
	}
	return false
}
