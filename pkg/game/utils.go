package game

import (
	"github.com/cbodonnell/snaky/pkg/game/types"
)

// Snapshot returns a copy of the session state for renderers.
func (s *Session) Snapshot() types.Snapshot {
	return types.Snapshot{
		SessionID:    s.ID(),
		Ticks:        s.ticks,
		GridSize:     s.grid.Size(),
		Snake:        SegmentsFromBody(s.snake.Body()),
		TargetLength: s.snake.TargetLength(),
		Heading:      s.snake.Heading(),
		Obstacles:    s.obstacles.Positions(),
		Foods:        s.food.Items(),
		Score:        s.score,
		WallMode:     s.wallMode,
		Paused:       s.state == types.StatePaused,
		GameOver:     s.state == types.StateGameOver,
		State:        s.state,
		Speed:        s.Speed(),
	}
}

// SegmentsFromBody flags the first cell of body as the head.
func SegmentsFromBody(body []types.Position) []types.Segment {
	segments := make([]types.Segment, len(body))
	for i, p := range body {
		segments[i] = types.Segment{Position: p, Head: i == 0}
	}
	return segments
}
