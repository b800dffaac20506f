package types

import "fmt"

// Position is a cell on the grid. (0,0) is the top-left cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position moved one step along d.
// The result is not wrapped.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a heading on the grid.
type Direction uint8

const (
	// DirectionNone means no intent was given
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// AllDirections lists the four headings in a fixed order.
var AllDirections = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection parses a direction name.
// Valid names are: up, down, left, right.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	default:
		return DirectionNone, fmt.Errorf("unknown direction: %s", s)
	}
}

// Obstacle is a moving blocker. Obstacles are identified by their index
// in the field, not by their position.
type Obstacle struct {
	Position Position  `json:"position"`
	Heading  Direction `json:"heading"`
}
