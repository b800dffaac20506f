package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Board(t *testing.T) {
	s := Snapshot{
		GridSize: 4,
		Snake: []Segment{
			{Position: Position{X: 1, Y: 1}, Head: true},
			{Position: Position{X: 0, Y: 1}},
		},
		Obstacles: []Position{{X: 3, Y: 0}},
		Foods: []Food{
			{Position: Position{X: 2, Y: 3}, Kind: FoodKindNormal},
			{Position: Position{X: 3, Y: 3}, Kind: FoodKindSuper},
			{Position: Position{X: 0, Y: 3}, Kind: FoodKindSlow},
		},
		Score:    20,
		WallMode: true,
		State:    StateRunning,
		Speed:    8.8,
	}

	want := "score=20 state=running wall=true speed=8.80 food=3\n" +
		"...#\n" +
		"sH..\n" +
		"....\n" +
		"w.nS\n"
	assert.Equal(t, want, s.Board())
	assert.Equal(t, "", Snapshot{}.Board())
}

func TestSnapshot_CopyEqual(t *testing.T) {
	s := Snapshot{
		SessionID: "a",
		GridSize:  4,
		Snake:     []Segment{{Position: Position{X: 1, Y: 1}, Head: true}},
		Foods:     []Food{{Position: Position{X: 2, Y: 2}}},
	}
	c := s.Copy()
	assert.True(t, s.Equal(c))

	c.Snake[0].Position.X = 3
	assert.False(t, s.Equal(c))
	assert.Equal(t, 1, s.Snake[0].Position.X)
}
