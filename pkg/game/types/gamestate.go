package types

import (
	"fmt"
	"strings"
)

// State is the lifecycle state of a game session.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Segment is one cell of the snake body.
type Segment struct {
	Position Position `json:"position"`
	Head     bool     `json:"head"`
}

// Snapshot is a read-only view of a session, safe to hand to renderers.
// The tail only vacates its cell on the next move once len(Snake) has
// reached TargetLength.
type Snapshot struct {
	// SessionID changes every time the session is reset
	SessionID string `json:"sessionID"`
	// Ticks counts the moves the snake has made in this session
	Ticks        uint64     `json:"ticks"`
	GridSize     int        `json:"gridSize"`
	Snake        []Segment  `json:"snake"`
	TargetLength int        `json:"targetLength"`
	Heading      Direction  `json:"heading"`
	Obstacles    []Position `json:"obstacles"`
	Foods        []Food     `json:"foods"`
	Score        int        `json:"score"`
	WallMode     bool       `json:"wallMode"`
	Paused       bool       `json:"paused"`
	GameOver     bool       `json:"gameOver"`
	State        State      `json:"state"`
	Speed        float64    `json:"speed"`
}

// Head returns the head position, and false if the snake has no body.
func (s Snapshot) Head() (Position, bool) {
	if len(s.Snake) == 0 {
		return Position{}, false
	}
	return s.Snake[0].Position, true
}

// FoodCount returns the number of food items on the board.
func (s Snapshot) FoodCount() int {
	return len(s.Foods)
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	out := s
	if s.Snake != nil {
		out.Snake = make([]Segment, len(s.Snake))
		copy(out.Snake, s.Snake)
	}
	if s.Obstacles != nil {
		out.Obstacles = make([]Position, len(s.Obstacles))
		copy(out.Obstacles, s.Obstacles)
	}
	if s.Foods != nil {
		out.Foods = make([]Food, len(s.Foods))
		copy(out.Foods, s.Foods)
	}
	return out
}

// Equal returns true if both snapshots describe the same board.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.SessionID != other.SessionID ||
		s.Ticks != other.Ticks ||
		s.GridSize != other.GridSize ||
		s.TargetLength != other.TargetLength ||
		s.Heading != other.Heading ||
		s.Score != other.Score ||
		s.WallMode != other.WallMode ||
		s.Paused != other.Paused ||
		s.GameOver != other.GameOver ||
		s.State != other.State ||
		s.Speed != other.Speed {
		return false
	}
	if len(s.Snake) != len(other.Snake) || len(s.Obstacles) != len(other.Obstacles) || len(s.Foods) != len(other.Foods) {
		return false
	}
	for i := range s.Snake {
		if s.Snake[i] != other.Snake[i] {
			return false
		}
	}
	for i := range s.Obstacles {
		if s.Obstacles[i] != other.Obstacles[i] {
			return false
		}
	}
	for i := range s.Foods {
		if s.Foods[i] != other.Foods[i] {
			return false
		}
	}
	return true
}

// Board draws the snapshot as text, one row per line.
// H is the head, s the body, # an obstacle, and n/S/w the food kinds.
// Cells holding more than one thing show the first of head, body,
// obstacle, food.
func (s Snapshot) Board() string {
	if s.GridSize <= 0 {
		return ""
	}
	rows := make([][]byte, s.GridSize)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", s.GridSize))
	}
	set := func(p Position, c byte) {
		if p.X < 0 || p.Y < 0 || p.X >= s.GridSize || p.Y >= s.GridSize {
			return
		}
		rows[p.Y][p.X] = c
	}
	for _, f := range s.Foods {
		switch f.Kind {
		case FoodKindSuper:
			set(f.Position, 'S')
		case FoodKindSlow:
			set(f.Position, 'w')
		default:
			set(f.Position, 'n')
		}
	}
	for _, o := range s.Obstacles {
		set(o, '#')
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if s.Snake[i].Head {
			set(s.Snake[i].Position, 'H')
		} else {
			set(s.Snake[i].Position, 's')
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "score=%d state=%s wall=%t speed=%.2f food=%d\n", s.Score, s.State, s.WallMode, s.Speed, len(s.Foods))
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
